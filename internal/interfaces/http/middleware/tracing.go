package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// Filter skips tracing for matching requests; nil traces everything
	Filter func(*http.Request) bool
}

// Tracing returns otelgin followed by a handler that tags the request span
// with the request id and operator once the handler chain has run. 5xx
// responses mark the span as failed.
func Tracing(cfg TracingConfig) gin.HandlersChain {
	if !cfg.Enabled {
		return gin.HandlersChain{func(c *gin.Context) { c.Next() }}
	}

	var opts []otelgin.Option
	if cfg.Filter != nil {
		filter := cfg.Filter
		opts = append(opts, otelgin.WithFilter(func(r *http.Request) bool { return !filter(r) }))
	}
	return gin.HandlersChain{otelgin.Middleware(cfg.ServiceName, opts...), enrichSpan}
}

func enrichSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	c.Next()

	if !span.IsRecording() {
		return
	}
	if id := GetRequestID(c); id != "" {
		span.SetAttributes(attribute.String("request_id", id))
	}
	if user := GetUser(c); user != "" {
		span.SetAttributes(attribute.String("user", user))
	}
	if status := c.Writer.Status(); status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}

// SkipInfraPaths filters health and metrics scrapes out of traces
func SkipInfraPaths(r *http.Request) bool {
	switch r.URL.Path {
	case "/health", "/metrics", "/api/v1/health":
		return true
	}
	return false
}
