package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"convert-api/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request counters and latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}

		metrics.RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		metrics.RequestDuration.WithLabelValues(method, endpoint).Observe(duration)
	}
}
