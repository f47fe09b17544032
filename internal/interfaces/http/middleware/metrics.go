package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"subversepay.backend/pkg/metrics"
)

// MetricsMiddleware records request count, latency and in-flight gauge per route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.RequestStarted()
		defer m.RequestFinished()

		c.Next()

		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
