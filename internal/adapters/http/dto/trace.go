package dto

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// GetTraceID extracts the OpenTelemetry trace ID from the request context.
// Returns an empty string when no recording span is active.
func GetTraceID(c *gin.Context) string {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.SpanContext().HasTraceID() {
		return ""
	}

	return span.SpanContext().TraceID().String()
}
