package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"regexp"
	"strings"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

var flightPattern = regexp.MustCompile(`flight number (\S+?)[ .,]`)

var fleet = []struct {
	make, model, prefix string
}{
	{"Airbus", "A320neo", "D-AI"},
	{"Boeing", "737-800", "N8"},
	{"Airbus", "A350-900", "F-HT"},
	{"Embraer", "E190", "G-LC"},
	{"Boeing", "787-9", "G-ZB"},
}

var routes = [][2]string{
	{"London Heathrow (LHR)", "New York JFK (JFK)"},
	{"Frankfurt (FRA)", "Los Angeles (LAX)"},
	{"Chicago O'Hare (ORD)", "Tokyo Narita (NRT)"},
	{"Paris Charles de Gaulle (CDG)", "Singapore Changi (SIN)"},
}

var statuses = []string{"On-time", "Delayed by 45 minutes", "Landed", "Boarding"}

// GenerateContentHandler answers models/{model}:generateContent with a canned,
// deterministic report for the flight number found in the prompt. Flight numbers
// starting with ZZ get the "cannot comply" answer.
func GenerateContentHandler(w http.ResponseWriter, r *http.Request) {
	if !strings.HasSuffix(r.PathValue("call"), ":generateContent") {
		http.Error(w, `{"error":{"code":404,"message":"unsupported method"}}`, http.StatusNotFound)
		return
	}
	if r.Header.Get("x-goog-api-key") == "" && r.URL.Query().Get("key") == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":401,"message":"API key missing","status":"UNAUTHENTICATED"}}`))
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Contents) == 0 || len(req.Contents[0].Parts) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"contents required","status":"INVALID_ARGUMENT"}}`))
		return
	}

	flightNumber := ""
	if m := flightPattern.FindStringSubmatch(req.Contents[0].Parts[0].Text + " "); m != nil {
		flightNumber = m[1]
	}

	jsonMode := req.GenerationConfig.ResponseMimeType == "application/json"
	var text string
	switch {
	case flightNumber == "" || strings.HasPrefix(flightNumber, "ZZ"):
		if jsonMode {
			text = "{}"
		} else {
			text = "ERROR: no plausible data for this flight number."
		}
	case jsonMode:
		raw, _ := json.Marshal(fabricate(flightNumber))
		text = string(raw)
	default:
		var b strings.Builder
		for _, kv := range fabricateLines(flightNumber) {
			fmt.Fprintf(&b, "%s: %v\n", kv[0], kv[1])
		}
		text = b.String()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(generateResponse{
		Candidates: []candidate{{
			Content:      content{Role: "model", Parts: []part{{Text: text}}},
			FinishReason: "STOP",
		}},
	})
}

func seed(flightNumber string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(flightNumber))
	return h.Sum32()
}

func fabricateLines(flightNumber string) [][2]any {
	s := seed(flightNumber)
	plane := fleet[s%uint32(len(fleet))]
	route := routes[(s/7)%uint32(len(routes))]

	return [][2]any{
		{"flightNumber", flightNumber},
		{"make", plane.make},
		{"model", plane.model},
		{"age", fmt.Sprintf("%d years", 1+s%20)},
		{"registration", fmt.Sprintf("%s%03X", plane.prefix, s%4096)},
		{"icao24", fmt.Sprintf("%06X", s%0xFFFFFF)},
		{"status", statuses[(s/3)%uint32(len(statuses))]},
		{"origin", route[0]},
		{"destination", route[1]},
		{"scheduledDeparture", "2025-06-12 10:00 AM UTC"},
		{"scheduledArrival", "2025-06-12 01:00 PM UTC"},
		{"maintenanceHistorySummary", "Routine A-check completed recently; no open defects reported."},
		{"estimatedReliabilityScore", 60 + int(s%41)},
	}
}

func fabricate(flightNumber string) map[string]any {
	out := make(map[string]any)
	for _, kv := range fabricateLines(flightNumber) {
		out[kv[0].(string)] = kv[1]
	}
	return out
}
