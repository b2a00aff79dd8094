// Package middleware provides HTTP middleware for the monitoring backend.
package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// maxRequestIDLength caps request IDs read from client headers before
// they land as span attributes.
const maxRequestIDLength = 128

type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// TracingWithConfig wraps otelgin and tags each span with the request
// ID plus, once authenticated, the tenant and user. Disabled tracing
// returns a pass-through handler so the route setup stays unconditional.
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	otel := otelgin.Middleware(cfg.ServiceName)
	return func(c *gin.Context) {
		otel(c)

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		if id := spanRequestID(c); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}
		if companyID := GetJWTCompanyID(c); companyID != "" {
			span.SetAttributes(attribute.String("company_id", companyID))
		}
		if userID := GetJWTUserID(c); userID != "" {
			span.SetAttributes(attribute.String("user_id", userID))
		}
	}
}

// spanRequestID prefers the ID assigned by the RequestID middleware and
// falls back to the raw header, truncated to something span-safe.
func spanRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	id := c.GetHeader("X-Request-ID")
	if len(id) > maxRequestIDLength {
		id = id[:maxRequestIDLength]
	}
	return id
}
