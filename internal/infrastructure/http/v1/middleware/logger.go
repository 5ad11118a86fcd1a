package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"parkly/pkg/logger"
)

// Logger middleware logs HTTP requests with timing and status. It also
// injects the application logger into the request context so lower layers
// log through the same instance.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Request = c.Request.WithContext(
			logger.WithLogger(c.Request.Context(), log),
		)

		c.Next()

		latency := time.Since(start)
		log.Infow("http request",
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"error", c.Errors.ByType(gin.ErrorTypePrivate).String(),
		)
	}
}
