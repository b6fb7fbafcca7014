// Package middleware provides HTTP middleware for the campaign service.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SpanAttrErrorMessage carries the error text of a failed request on its span
const SpanAttrErrorMessage = "error.message"

// MaxRequestIDLength is the maximum accepted length of an incoming request ID
const MaxRequestIDLength = 128

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// SkipPaths are not traced (health probes, metrics scrapes)
	SkipPaths []string
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "campaign-backend",
		Enabled:     true,
		SkipPaths:   []string{"/health", "/metrics"},
	}
}

// Tracing returns OpenTelemetry tracing middleware with default configuration.
func Tracing() gin.HandlerFunc {
	return TracingWithConfig(DefaultTracingConfig())
}

// TracingWithConfig returns the otelgin middleware. The span is named after
// the route template, e.g. "GET /campaigns/:id". Use TracingAttributeInjector
// and SpanErrorMarker after it to enrich the span.
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}
	return otelgin.Middleware(cfg.ServiceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !skip[r.URL.Path]
		}),
	)
}

// TracingAttributeInjector adds request_id and user_id to the request span.
// Attributes are set once the handlers have run, so the user ID set by the
// JWT middleware further down the chain is visible.
func TracingAttributeInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			enrichSpanWithAttributes(c, span)
		}
	}
}

// enrichSpanWithAttributes adds custom attributes to the span from the request context.
func enrichSpanWithAttributes(c *gin.Context, span trace.Span) {
	if requestID := c.GetString(RequestIDKey); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}
	if userID := c.GetString(JWTUserIDKey); userID != "" {
		span.SetAttributes(attribute.String("user_id", userID))
	}
}

// SpanErrorMarker returns a middleware that marks spans with error status
// for HTTP error responses (4xx/5xx).
// This should be placed AFTER the Tracing middleware in the middleware chain.
// otelgin sets the status of 5xx spans itself once the chain returns, which
// replaces any description set here, so for those the message is kept as an
// error.message attribute and an event instead.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}

		statusCode := c.Writer.Status()
		if statusCode < http.StatusBadRequest {
			return
		}

		var errorMessage string
		switch {
		case statusCode >= http.StatusInternalServerError:
			errorMessage = "Internal Server Error"
		case statusCode == http.StatusUnauthorized:
			errorMessage = "Unauthorized"
		case statusCode == http.StatusNotFound:
			errorMessage = "Not Found"
		case statusCode == http.StatusConflict:
			errorMessage = "Conflict"
		default:
			errorMessage = "Client Error"
		}

		span.SetAttributes(
			attribute.Int("http.status_code", statusCode),
			attribute.String(SpanAttrErrorMessage, errorMessage),
		)
		if statusCode >= http.StatusInternalServerError {
			span.AddEvent("http.server_error", trace.WithAttributes(
				attribute.String(SpanAttrErrorMessage, errorMessage),
			))
			return
		}
		span.SetStatus(codes.Error, errorMessage)
	}
}
