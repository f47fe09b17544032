package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"subversepay.backend/pkg/logger"
)

// LoggerMiddleware logs HTTP requests using the structured logger
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		logger.LogRequest(c.Request.Context(), logger.RequestLog{
			Method:   c.Request.Method,
			Path:     path,
			Route:    c.FullPath(),
			Status:   c.Writer.Status(),
			Latency:  time.Since(start),
			ClientIP: c.ClientIP(),
			Errors:   c.Errors.ByType(gin.ErrorTypeAny).String(),
		})
	}
}
