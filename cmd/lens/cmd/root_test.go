package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proxyReturning(t *testing.T, status int, body map[string]string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &got)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLens_PrintsReport(t *testing.T) {
	srv, got := proxyReturning(t, http.StatusOK, map[string]string{
		"data": `{"flightNumber":"LH456","make":"Airbus","model":"A320neo","estimatedReliabilityScore":75}`,
	})

	stdout, _, err := execute(t, "lh", "456", "--api", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Flight Lens Details for LH456")
	assert.Contains(t, stdout, "A320neo")
	assert.Contains(t, stdout, "Good")
	assert.Equal(t, "flightInfo", (*got)["type"])
	assert.Contains(t, (*got)["prompt"], "LH456")
}

func TestLens_ErrorPhaseExitsNonZero(t *testing.T) {
	srv, _ := proxyReturning(t, http.StatusInternalServerError, map[string]string{
		"error": "API key not configured",
	})

	stdout, _, err := execute(t, "ZZ000", "--api", srv.URL)

	assert.ErrorIs(t, err, errLookupFailed)
	assert.Contains(t, stdout, "API key not configured")
	assert.Contains(t, stdout, "plausible data")
}

func TestLens_TextMode(t *testing.T) {
	srv, got := proxyReturning(t, http.StatusOK, map[string]string{"data": "Make: Boeing"})

	stdout, _, err := execute(t, "ba249", "--text", "--api", srv.URL)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Make: Boeing")
	assert.Equal(t, "BA249", (*got)["flightNumber"])
	assert.Equal(t, "text", (*got)["format"])
}

func TestLens_RequiresFlightNumber(t *testing.T) {
	_, _, err := execute(t)
	assert.Error(t, err)
}
