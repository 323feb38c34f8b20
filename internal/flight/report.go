package flight

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// UnparsableMessage is what the user sees for ErrUnparsable.
const UnparsableMessage = "Could not parse AI-generated flight data. Please try again."

var (
	// ErrUnparsable means the model answered with something that is not a report.
	ErrUnparsable = errors.New("unparsable AI response")
	// ErrNoPlausibleData means the model could not (or did not) describe the queried flight.
	ErrNoPlausibleData = errors.New("no plausible data")
)

// MismatchError reports a well-formed answer for the wrong (or no) flight.
type MismatchError struct {
	Query string
	Got   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("AI could not generate plausible data for flight number: %s.", e.Query)
}

func (e *MismatchError) Is(target error) bool { return target == ErrNoPlausibleData }

// ParseReport decodes model output as untrusted input. The only structural rule is
// that the report describes the queried flight; an empty object fails it.
func ParseReport(data, flightNumber string) (*Report, error) {
	var report Report
	if err := json.Unmarshal([]byte(data), &report); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	if report.FlightNumber != flightNumber {
		return nil, &MismatchError{Query: flightNumber, Got: report.FlightNumber}
	}
	return &report, nil
}

// UserMessage is the banner text for a lookup error. Decoder detail stays in the
// error chain for logs and never reaches the page.
func UserMessage(err error) string {
	var mismatch *MismatchError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &mismatch):
		return mismatch.Error()
	case errors.Is(err, ErrUnparsable):
		return UnparsableMessage
	default:
		return err.Error()
	}
}

// ParseText checks a free-text answer for the model's own refusal marker.
func ParseText(text, flightNumber string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, TextErrorPrefix) {
		return "", &MismatchError{Query: flightNumber}
	}
	return trimmed, nil
}

// Rating buckets a reliability score the way the report card colours it.
type Rating struct {
	Label string
	Band  string // green, yellow, red, or gray when unknown
}

func ReliabilityRating(score *float64) Rating {
	switch {
	case score == nil:
		return Rating{Label: "", Band: "gray"}
	case *score >= 90:
		return Rating{Label: "Excellent", Band: "green"}
	case *score >= 70:
		return Rating{Label: "Good", Band: "yellow"}
	default:
		return Rating{Label: "Needs Attention", Band: "red"}
	}
}

// ScoreText renders a score as "87/100", or "N/A" when absent.
func ScoreText(score *float64) string {
	if score == nil {
		return "N/A"
	}
	return fmt.Sprintf("%g/100", *score)
}

// ScorePercent clamps a score into a 0-100 bar width.
func ScorePercent(score *float64) float64 {
	if score == nil {
		return 0
	}
	return min(max(*score, 0), 100)
}

// Entry is one labelled report line for renderers.
type Entry struct {
	Label string
	Value string
}

// Sections groups the report into the card's sections: aircraft, route, maintenance.
func (r *Report) Sections() [][]Entry {
	return [][]Entry{
		{
			{"Make", r.Make},
			{"Model", r.Model},
			{"Age", r.Age},
			{"Registration", r.Registration},
			{"ICAO24", r.ICAO24},
			{"Current Status", r.Status},
		},
		{
			{"Origin Airport", r.Origin},
			{"Destination Airport", r.Destination},
			{"Scheduled Departure", r.ScheduledDeparture},
			{"Scheduled Arrival", r.ScheduledArrival},
		},
		{
			{"Maintenance Summary", r.MaintenanceHistorySummary},
		},
	}
}
