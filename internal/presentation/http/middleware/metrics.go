package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sonsardina/framing-api/internal/infrastructure/metrics"
)

// MetricsMiddleware counts served requests by route template
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status())
	}
}
