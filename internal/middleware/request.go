package middleware

import (
	"flightlens/pkg/idgen"
	"flightlens/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

const (
	RequestIDHeader = "X-Request-ID"

	loggerKey    = "logger"
	requestIDKey = "request_id"
)

// RequestLogger tags each request with an id (reusing a caller-supplied X-Request-ID)
// and stores a request-scoped logger on the gin context. Trace ids are attached when
// otelgin has started a span.
func RequestLogger(gen idgen.Generator, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = gen.NewID()
		}
		c.Header(RequestIDHeader, requestID)
		c.Set(requestIDKey, requestID)

		fields := []logger.Field{{Key: "request_id", Value: requestID}}
		span := trace.SpanFromContext(c.Request.Context())
		if span.SpanContext().IsValid() {
			fields = append(fields,
				logger.Field{Key: "trace_id", Value: span.SpanContext().TraceID().String()},
				logger.Field{Key: "span_id", Value: span.SpanContext().SpanID().String()},
			)
		}
		reqLog := log.With(fields...)
		c.Set(loggerKey, reqLog)

		reqLog.Debug("incoming request",
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
		)

		c.Next()

		reqLog.Info("request completed",
			logger.Field{Key: "status", Value: c.Writer.Status()},
			logger.Field{Key: "method", Value: c.Request.Method},
			logger.Field{Key: "path", Value: c.Request.URL.Path},
		)
	}
}

// Logger returns the request-scoped logger, or fallback outside RequestLogger.
func Logger(c *gin.Context, fallback logger.Logger) logger.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(logger.Logger); ok {
			return l
		}
	}
	return fallback
}

func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
