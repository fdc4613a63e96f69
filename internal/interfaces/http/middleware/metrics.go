package middleware

import (
	"time"

	"github.com/erp/mfgdesk/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
)

// Metrics records request count, latency and in-flight requests per matched
// route. The /metrics scrape itself is not counted.
func Metrics(m *telemetry.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		done := m.RequestStarted()
		start := time.Now()

		c.Next()

		done()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
