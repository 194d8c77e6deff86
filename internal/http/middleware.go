package http

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wingmanapp/wingman/internal/observability"
)

// MetricsMiddleware records request counts and latency per route template.
// Unmatched routes fall back to the raw path so 404s remain visible
// without exploding label cardinality on real traffic.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := strconv.Itoa(c.Writer.Status())

		observability.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		observability.HTTPRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
	}
}
