package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, d time.Duration)
}

func MetricsMiddleware(m HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
