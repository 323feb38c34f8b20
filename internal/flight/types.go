package flight

import (
	"encoding/json"
	"net/http"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION"
	ErrorCodeConfiguration   ErrorCode = "CONFIGURATION"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError carries the HTTP status and message a handler should answer with.
type AppError struct {
	Status  int
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

var (
	ErrAPIKeyMissing = &AppError{
		Status:  http.StatusInternalServerError,
		Code:    ErrorCodeConfiguration,
		Message: "API key not configured",
	}
	ErrPromptRequired = &AppError{
		Status:  http.StatusBadRequest,
		Code:    ErrorCodeValidation,
		Message: "Prompt is required",
	}
)

// Output formats accepted by the flight-number request variant.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ProxyRequest is the body of POST /api/gemini. Either Prompt (with optional Schema)
// or FlightNumber must be set; Prompt wins when both are.
type ProxyRequest struct {
	Prompt       string          `json:"prompt,omitempty"`
	Type         string          `json:"type,omitempty" example:"flightInfo"`
	Schema       json.RawMessage `json:"schema,omitempty" swaggertype:"object"`
	FlightNumber string          `json:"flightNumber,omitempty" example:"LH456"`
	Format       string          `json:"format,omitempty" enums:"json,text"`
}

type ProxyResponse struct {
	Data string `json:"data"`
}

type ErrorResponse struct {
	Error   string    `json:"error"`
	Code    ErrorCode `json:"code,omitempty"`
	Details string    `json:"details,omitempty"`
}

// Query is a normalized lookup for one flight.
type Query struct {
	FlightNumber string `json:"flightNumber"`
}

// Report is the canonical AI-generated flight description.
// EstimatedReliabilityScore is a pointer so a missing score can render as N/A.
type Report struct {
	FlightNumber              string   `json:"flightNumber"`
	Make                      string   `json:"make"`
	Model                     string   `json:"model"`
	Age                       string   `json:"age"`
	Registration              string   `json:"registration"`
	ICAO24                    string   `json:"icao24"`
	Status                    string   `json:"status"`
	Origin                    string   `json:"origin"`
	Destination               string   `json:"destination"`
	ScheduledDeparture        string   `json:"scheduledDeparture"`
	ScheduledArrival          string   `json:"scheduledArrival"`
	MaintenanceHistorySummary string   `json:"maintenanceHistorySummary"`
	EstimatedReliabilityScore *float64 `json:"estimatedReliabilityScore"`
}
