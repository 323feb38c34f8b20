package flight

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flightlens/pkg/gemini"
	"flightlens/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CredentialFunc returns the provider credential, read at call time.
type CredentialFunc func() (string, bool)

type ServiceConfig struct {
	Model     string
	Grounding bool
}

type Service struct {
	credential   CredentialFunc
	newCompleter gemini.Factory
	config       ServiceConfig
	logger       logger.Logger
	lookups      metric.Int64Counter
}

func NewService(credential CredentialFunc, newCompleter gemini.Factory, config ServiceConfig, log logger.Logger) *Service {
	lookups, err := otel.Meter("flightlens/internal/flight").Int64Counter(
		"flightlens.lookups",
		metric.WithDescription("Proxy requests by outcome"),
	)
	if err != nil {
		log.Warn("failed to create lookups counter", logger.Err(err))
	}

	return &Service{
		credential:   credential,
		newCompleter: newCompleter,
		config:       config,
		logger:       log,
		lookups:      lookups,
	}
}

// Complete runs one proxy request: credential check, input validation, one provider
// call. The returned text is the provider's output, unvalidated.
func (s *Service) Complete(ctx context.Context, req ProxyRequest, log logger.Logger) (string, error) {
	if log == nil {
		log = s.logger
	}

	apiKey, ok := s.credential()
	if !ok {
		s.record(ctx, "misconfigured")
		log.Error("provider credential missing")
		return "", ErrAPIKeyMissing
	}

	completion, err := s.buildRequest(req)
	if err != nil {
		s.record(ctx, "invalid")
		return "", err
	}

	log.Info("forwarding prompt",
		logger.Field{Key: "type", Value: req.Type},
		logger.Field{Key: "flight_number", Value: req.FlightNumber},
		logger.Field{Key: "mode", Value: gemini.Mode(completion)},
		logger.Field{Key: "model", Value: completion.Model},
	)

	completer, err := s.newCompleter(ctx, apiKey)
	if err != nil {
		s.record(ctx, "provider_error")
		log.Error("failed to create provider client", logger.Err(err))
		return "", internalError(err)
	}

	startTime := time.Now()
	text, err := completer.Complete(ctx, completion)
	if err != nil {
		s.record(ctx, "provider_error")
		log.Error("provider call failed",
			logger.Err(err),
			logger.Field{Key: "elapsed_ms", Value: time.Since(startTime).Milliseconds()},
		)
		return "", internalError(err)
	}

	s.record(ctx, "ok")
	log.Info("provider call succeeded",
		logger.Field{Key: "elapsed_ms", Value: time.Since(startTime).Milliseconds()},
		logger.Field{Key: "bytes", Value: len(text)},
	)
	return text, nil
}

func (s *Service) buildRequest(req ProxyRequest) (gemini.CompletionRequest, error) {
	completion := gemini.CompletionRequest{
		Model:     s.config.Model,
		Grounding: s.config.Grounding,
	}

	if req.Prompt != "" {
		schema, err := DecodeSchema(req.Schema)
		if err != nil {
			return completion, internalError(err)
		}
		completion.Prompt = req.Prompt
		completion.Schema = schema
		return completion, nil
	}

	flightNumber := NormalizeFlightNumber(req.FlightNumber)
	if flightNumber == "" {
		return completion, ErrPromptRequired
	}

	switch req.Format {
	case "", FormatJSON:
		completion.Prompt = BuildPrompt(flightNumber)
		completion.Schema = BuildSchema().GenAI()
	case FormatText:
		completion.Prompt = BuildTextPrompt(flightNumber)
	default:
		return completion, &AppError{
			Status:  http.StatusBadRequest,
			Code:    ErrorCodeValidation,
			Message: fmt.Sprintf("Unsupported format %q", req.Format),
		}
	}
	return completion, nil
}

func (s *Service) record(ctx context.Context, outcome string) {
	if s.lookups == nil {
		return
	}
	s.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func internalError(err error) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Code:    ErrorCodeInternalFailure,
		Message: "Internal Server Error",
		Err:     err,
	}
}
