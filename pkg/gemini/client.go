package gemini

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"
)

var ErrEmptyCompletion = errors.New("gemini returned no candidates")

// CompletionRequest is one single-turn prompt. A nil Schema selects free-text mode.
type CompletionRequest struct {
	Prompt    string
	Model     string
	Schema    *genai.Schema
	Grounding bool
}

// Completer turns a prompt into text.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Factory builds a Completer for a credential. The proxy calls it once per request,
// because the credential is read at request time.
type Factory func(ctx context.Context, apiKey string) (Completer, error)

type Options struct {
	// BaseURL overrides the Gemini API endpoint (mock server, proxies).
	BaseURL string
}

type Client struct {
	client *genai.Client
	tracer trace.Tracer
}

var _ Completer = (*Client)(nil)

func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: opts.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{
		client: client,
		tracer: otel.Tracer("flightlens/pkg/gemini"),
	}, nil
}

// NewFactory returns a Factory producing real Gemini clients.
func NewFactory(opts Options) Factory {
	return func(ctx context.Context, apiKey string) (Completer, error) {
		return NewClient(ctx, apiKey, opts)
	}
}

func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "gemini.complete", trace.WithAttributes(
		attribute.String("gemini.model", req.Model),
		attribute.String("gemini.mode", Mode(req)),
		attribute.Bool("gemini.grounding", req.Grounding && req.Schema == nil),
	))
	defer span.End()

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, BuildConfig(req))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate content failed")
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		span.SetStatus(codes.Error, ErrEmptyCompletion.Error())
		return "", ErrEmptyCompletion
	}

	return resp.Text(), nil
}

// BuildConfig maps a request onto the SDK config: thinking disabled, JSON output when a
// schema is present, otherwise plain text with optional Google Search grounding.
func BuildConfig(req CompletionRequest) *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}

	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema
		return config
	}

	// Gemini rejects tools combined with a JSON response type, so grounding is text-only.
	if req.Grounding {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}
	return config
}

// Mode names the output mode of a request, for logs and span attributes.
func Mode(req CompletionRequest) string {
	if req.Schema != nil {
		return "json"
	}
	return "text"
}
