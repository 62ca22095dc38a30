package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/quickmart/checkout-api/pkg/logger"
)

// LoggerMiddleware logs one structured line per request.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// Client-supplied IDs can be any length; truncate only when long
		// enough.
		shortID := requestID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		logger.Info().
			Str("request_id", shortID).
			Str("method", c.Request.Method).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("path", path).
			Msg("request")

		for _, e := range c.Errors {
			logger.Error().Str("request_id", shortID).Err(e.Err).Msg("request error")
		}
	}
}
