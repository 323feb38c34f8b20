package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash-preview-05-20"
	GeminiAPIKeyEnv    = "GEMINI_API_KEY"
)

type GeminiConfig struct {
	Model     string
	BaseURL   string
	Grounding bool
}

type LensConfig struct {
	APIBaseURL     string
	TimeoutSeconds int
}

type ObservabilityConfig struct {
	ServiceName  string
	Environment  string
	OTLPEndpoint string
}

// Enabled reports whether an OTLP collector is configured.
func (o ObservabilityConfig) Enabled() bool {
	return o.OTLPEndpoint != ""
}

type Config struct {
	AppEnv          string
	AppPort         string
	SnowflakeNodeID int64
	Gemini          GeminiConfig
	Lens            LensConfig
	Observability   ObservabilityConfig
}

// Load reads the process environment, after merging a .env file when one exists.
// GEMINI_API_KEY is deliberately not part of Config: the proxy reads it per request.
func Load() (*Config, error) {
	var errs []error

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := envOr("APP_ENV", "development")
	appPort := envOr("APP_PORT", "8080")

	nodeID := intEnv("SNOWFLAKE_NODE_ID", 1, &errs)
	timeout := intEnv("LENS_TIMEOUT_SECONDS", 30, &errs)
	if timeout <= 0 {
		errs = append(errs, errors.New("invalid env: LENS_TIMEOUT_SECONDS must be positive"))
	}

	grounding := boolEnv("GEMINI_GROUNDING", false, &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:          appEnv,
		AppPort:         appPort,
		SnowflakeNodeID: int64(nodeID),
		Gemini: GeminiConfig{
			Model:     envOr("GEMINI_MODEL", DefaultGeminiModel),
			BaseURL:   os.Getenv("GEMINI_BASE_URL"),
			Grounding: grounding,
		},
		Lens: LensConfig{
			APIBaseURL:     envOr("LENS_API_BASE_URL", "http://localhost:"+appPort),
			TimeoutSeconds: timeout,
		},
		Observability: ObservabilityConfig{
			ServiceName:  envOr("OTEL_SERVICE_NAME", "flightlens"),
			Environment:  appEnv,
			OTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
	}, nil
}

// EnvCredential returns a lookup that reads key from the environment on every call.
func EnvCredential(key string) func() (string, bool) {
	return func() (string, bool) {
		value, exists := os.LookupEnv(key)
		return value, exists && value != ""
	}
}

func envOr(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int, errs *[]error) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool, errs *[]error) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
		return fallback
	}
	return b
}
