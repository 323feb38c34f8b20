package lens

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"flightlens/internal/flight"
	"flightlens/pkg/logger"
)

const proxyPath = "/api/gemini"

// APIError is an error envelope returned by the proxy.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string { return e.Message }

// TransportError wraps a failure to reach the proxy at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "Failed to retrieve data. Network error or API issue. Detailed error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

const noDataMessage = "API did not return valid flight data. Please try again or with a different flight number."

// Client is the browser-side half of the proxy contract: it builds prompts, calls
// the proxy and treats whatever comes back as untrusted.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, baseURL string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
	}
}

// Lookup fetches a JSON report for an already normalized flight number.
func (c *Client) Lookup(ctx context.Context, flightNumber string) (*flight.Report, error) {
	schema, err := json.Marshal(flight.BuildSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}

	data, err := c.post(ctx, flight.ProxyRequest{
		Prompt: flight.BuildPrompt(flightNumber),
		Type:   "flightInfo",
		Schema: schema,
	})
	if err != nil {
		return nil, err
	}

	report, err := flight.ParseReport(data, flightNumber)
	if err != nil {
		c.logger.Warn("discarding AI response",
			logger.Err(err),
			logger.Field{Key: "flight_number", Value: flightNumber},
			logger.Field{Key: "raw", Value: data},
		)
		return nil, err
	}
	return report, nil
}

// LookupText fetches a free-text summary, letting the proxy build the prompt.
func (c *Client) LookupText(ctx context.Context, flightNumber string) (string, error) {
	data, err := c.post(ctx, flight.ProxyRequest{
		FlightNumber: flightNumber,
		Format:       flight.FormatText,
	})
	if err != nil {
		return "", err
	}
	return flight.ParseText(data, flightNumber)
}

func (c *Client) post(ctx context.Context, body flight.ProxyRequest) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+proxyPath, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("failed to build proxy request", logger.Err(err))
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("proxy call failed", logger.Err(err))
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	var envelope struct {
		Data    string `json:"data"`
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", &TransportError{Err: fmt.Errorf("failed to decode proxy response: %w", err)}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 && envelope.Data != "" {
		return envelope.Data, nil
	}

	c.logger.Error("proxy returned an error",
		logger.Field{Key: "status", Value: resp.StatusCode},
		logger.Field{Key: "error", Value: envelope.Error},
		logger.Field{Key: "details", Value: envelope.Details},
	)
	if envelope.Error != "" {
		return "", &APIError{Status: resp.StatusCode, Message: envelope.Error, Details: envelope.Details}
	}
	return "", &APIError{Status: resp.StatusCode, Message: noDataMessage}
}
