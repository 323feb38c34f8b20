package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	for _, key := range []string{
		"APP_ENV", "APP_PORT", "SNOWFLAKE_NODE_ID", "LENS_TIMEOUT_SECONDS",
		"GEMINI_GROUNDING", "GEMINI_MODEL", "GEMINI_BASE_URL", "LENS_API_BASE_URL",
		"OTEL_SERVICE_NAME", "OTEL_EXPORTER_OTLP_ENDPOINT",
	} {
		t.Setenv(key, "")
	}

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", config.AppEnv)
	assert.Equal(t, "8080", config.AppPort)
	assert.Equal(t, int64(1), config.SnowflakeNodeID)
	assert.Equal(t, DefaultGeminiModel, config.Gemini.Model)
	assert.False(t, config.Gemini.Grounding)
	assert.Equal(t, "http://localhost:8080", config.Lens.APIBaseURL)
	assert.Equal(t, 30, config.Lens.TimeoutSeconds)
	assert.False(t, config.Observability.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("GEMINI_GROUNDING", "true")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", config.Lens.APIBaseURL)
	assert.True(t, config.Gemini.Grounding)
	assert.Equal(t, "gemini-2.5-flash", config.Gemini.Model)
	assert.True(t, config.Observability.Enabled())
}

func TestLoad_JoinsConversionErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SNOWFLAKE_NODE_ID", "one")
	t.Setenv("GEMINI_GROUNDING", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SNOWFLAKE_NODE_ID")
	assert.Contains(t, err.Error(), "GEMINI_GROUNDING")
}

func TestEnvCredential(t *testing.T) {
	lookup := EnvCredential(GeminiAPIKeyEnv)

	t.Setenv(GeminiAPIKeyEnv, "")
	_, ok := lookup()
	assert.False(t, ok)

	t.Setenv(GeminiAPIKeyEnv, "secret")
	key, ok := lookup()
	assert.True(t, ok)
	assert.Equal(t, "secret", key)
}
