package flight

import (
	"fmt"
	"strings"
	"unicode"
)

// ReportField describes one field the model must return.
type ReportField struct {
	Name string
	Kind SchemaType
	Hint string // type and example text shown in the prompt
}

// ReportFields is the ordered field catalogue shared by the prompts, the schema
// and the renderers.
var ReportFields = []ReportField{
	{Name: "flightNumber", Kind: TypeString, Hint: "string, same as input"},
	{Name: "make", Kind: TypeString, Hint: "string, e.g., Boeing, Airbus, Embraer"},
	{Name: "model", Kind: TypeString, Hint: "string, e.g., 737-800, A320neo, E190"},
	{Name: "age", Kind: TypeString, Hint: `string, e.g., "5 years", "10 years"`},
	{Name: "registration", Kind: TypeString, Hint: `string, e.g., "N123AA", "G-XXXX"`},
	{Name: "icao24", Kind: TypeString, Hint: `string, e.g., "A1B2C3", "400D5E"`},
	{Name: "status", Kind: TypeString, Hint: `string, e.g., "On-time", "Delayed by 45 minutes", "Landed", "Cancelled"`},
	{Name: "origin", Kind: TypeString, Hint: `string, e.g., "London Heathrow (LHR)"`},
	{Name: "destination", Kind: TypeString, Hint: `string, e.g., "New York JFK (JFK)"`},
	{Name: "scheduledDeparture", Kind: TypeString, Hint: `string, e.g., "2025-06-12 10:00 AM UTC"`},
	{Name: "scheduledArrival", Kind: TypeString, Hint: `string, e.g., "2025-06-12 01:00 PM UTC"`},
	{Name: "maintenanceHistorySummary", Kind: TypeString, Hint: "string, a brief, plausible summary of recent maintenance"},
	{Name: "estimatedReliabilityScore", Kind: TypeNumber, Hint: "number, 1-100, where higher is better"},
}

// TextErrorPrefix starts a free-text answer when the model cannot comply.
const TextErrorPrefix = "ERROR:"

// NormalizeFlightNumber uppercases s and drops every whitespace rune.
// Format is not validated; any non-empty result is submitted.
func NormalizeFlightNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// BuildPrompt returns the JSON-mode instruction for flightNumber.
func BuildPrompt(flightNumber string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate plausible (but not necessarily real-time or accurate) flight and aircraft details for flight number %s in JSON format. Include:\n", flightNumber)
	writeFieldList(&b)
	b.WriteString("If you cannot plausibly generate data for the given flight number, return an empty JSON object.")
	return b.String()
}

// BuildTextPrompt returns the free-text instruction for flightNumber.
func BuildTextPrompt(flightNumber string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide plausible (but not necessarily real-time or accurate) flight and aircraft details for flight number %s as a short, formatted summary with one labelled line per item. Cover:\n", flightNumber)
	writeFieldList(&b)
	fmt.Fprintf(&b, "If you cannot plausibly provide details for the given flight number, reply with a single line starting with %q followed by the reason.", TextErrorPrefix)
	return b.String()
}

func writeFieldList(b *strings.Builder) {
	for _, f := range ReportFields {
		fmt.Fprintf(b, "  - %s (%s)\n", f.Name, f.Hint)
	}
}

// BuildSchema returns the output schema matching BuildPrompt. Every property is required.
func BuildSchema() *Schema {
	schema := &Schema{
		Type:       TypeObject,
		Properties: make(map[string]*Schema, len(ReportFields)),
		Required:   make([]string, 0, len(ReportFields)),
	}
	for _, f := range ReportFields {
		schema.Properties[f.Name] = &Schema{Type: f.Kind}
		schema.Required = append(schema.Required, f.Name)
	}
	return schema
}
