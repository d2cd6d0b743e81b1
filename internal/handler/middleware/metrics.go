package middleware

import (
	"strconv"

	"hotel-ops/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts every request by method, route template and
// status. The route template (not the raw path) keeps cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.IncHTTP(c.Request.Method, path, strconv.Itoa(c.Writer.Status()))
	}
}
