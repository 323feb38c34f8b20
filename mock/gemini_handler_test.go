package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func call(t *testing.T, prompt, mime string) (int, string) {
	t.Helper()

	body := `{"contents":[{"role":"user","parts":[{"text":` + mustQuote(prompt) + `}]}],"generationConfig":{"responseMimeType":"` + mime + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/v1beta/models/gemini-2.5-flash:generateContent", strings.NewReader(body))
	req.Header.Set("x-goog-api-key", "dev")
	w := httptest.NewRecorder()
	newMux().ServeHTTP(w, req)

	var resp generateResponse
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		return w.Code, resp.Candidates[0].Content.Parts[0].Text
	}
	return w.Code, w.Body.String()
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{version}/models/{call}", GenerateContentHandler)
	return mux
}

func mustQuote(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}

func TestGenerateContent_JSON(t *testing.T) {
	code, text := call(t, "details for flight number LH456 in JSON format. Include:", "application/json")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	var report map[string]any
	if err := json.Unmarshal([]byte(text), &report); err != nil {
		t.Fatalf("expected JSON report, got %q", text)
	}
	if report["flightNumber"] != "LH456" {
		t.Errorf("expected flightNumber LH456, got %v", report["flightNumber"])
	}

	_, again := call(t, "details for flight number LH456 in JSON format. Include:", "application/json")
	if again != text {
		t.Errorf("expected deterministic output")
	}
}

func TestGenerateContent_CannotComply(t *testing.T) {
	_, text := call(t, "details for flight number ZZ000 in JSON format.", "application/json")
	if text != "{}" {
		t.Errorf("expected empty object, got %q", text)
	}

	_, text = call(t, "details for flight number ZZ000 as a short summary", "")
	if !strings.HasPrefix(text, "ERROR:") {
		t.Errorf("expected ERROR: prefix, got %q", text)
	}
}

func TestGenerateContent_Text(t *testing.T) {
	_, text := call(t, "details for flight number UA870 as a short summary", "")
	if !strings.Contains(text, "flightNumber: UA870") {
		t.Errorf("expected labelled lines, got %q", text)
	}
}

func TestGenerateContent_RequiresKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1beta/models/m:generateContent", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	newMux().ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}
