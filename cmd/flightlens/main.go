package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"flightlens/cfg"
	"flightlens/internal/flight"
	"flightlens/internal/lens"
	"flightlens/internal/middleware"
	"flightlens/pkg/gemini"
	"flightlens/pkg/idgen"
	"flightlens/pkg/logger"

	"flightlens/cmd/flightlens/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// version is stamped at build time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

type buildInfo struct {
	version string
	model   string
}

// @title           Flight Lens API
// @version         1.0
// @description     Proxy between the Flight Lens UI and the Gemini text completion API.
// @BasePath        /
// @schemes         http
func main() {
	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)
	build := buildInfo{version: version, model: config.Gemini.Model}

	// ============
	// Otel
	// ============
	if config.Observability.Enabled() {
		shutdownOtel, err := initOtel(context.Background(), &config.Observability, build, zlogger)
		if err != nil {
			log.Fatalf("failed to initialize OpenTelemetry: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown OpenTelemetry", logger.Err(err))
			}
		}()
	} else {
		zlogger.Info("OTEL_EXPORTER_OTLP_ENDPOINT not set, tracing and metrics disabled")
	}

	// ============
	// Request IDs
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Proxy
	// ============
	flightSvc := flight.NewService(
		cfg.EnvCredential(cfg.GeminiAPIKeyEnv),
		gemini.NewFactory(gemini.Options{BaseURL: config.Gemini.BaseURL}),
		flight.ServiceConfig{
			Model:     config.Gemini.Model,
			Grounding: config.Gemini.Grounding,
		},
		zlogger,
	)
	flightHandler := flight.NewFlightHandler(flightSvc, zlogger)

	// ============
	// UI
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.Lens.TimeoutSeconds) * time.Second,
	}
	lensClient := lens.NewClient(httpClient, config.Lens.APIBaseURL, zlogger)
	webHandler := lens.NewWebHandler(lensClient, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if config.Observability.Enabled() {
		r.Use(otelgin.Middleware(config.Observability.ServiceName))
	}
	r.Use(middleware.RequestLogger(ids, zlogger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	flightHandler.RegisterRoutes(r)
	webHandler.RegisterRoutes(r)
	initSwagger(r, build)

	addr := fmt.Sprintf(":%s", config.AppPort)
	zlogger.Info("starting flight lens",
		logger.Field{Key: "addr", Value: addr},
		logger.Field{Key: "version", Value: build.version},
		logger.Field{Key: "model", Value: config.Gemini.Model},
		logger.Field{Key: "proxy_url", Value: config.Lens.APIBaseURL},
	)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initSwagger serves the proxy contract at /swagger and a Scalar reference at /docs.
func initSwagger(r *gin.Engine, build buildInfo) {
	docs.SwaggerInfo.Version = build.version
	docs.SwaggerInfo.Description = fmt.Sprintf("Proxy between the Flight Lens UI and the Gemini text completion API (model %s).", build.model)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, docsPage)
	})
}

const docsPage = `<!DOCTYPE html>
<html>
<head>
    <title>Flight Lens API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json" data-configuration='{"theme":"purple","hideModels":false}'></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
