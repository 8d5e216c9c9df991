package middleware

import (
	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TapLogger tags the request logger with the operation name and a fresh operation id.
func TapLogger(operation string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := c.MustGet(responding.LoggerKey).(*zerolog.Logger)

		requestLogger := logger.
			With().
			Str("operation", operation).
			Str("operationId", uuid.New().String()).
			Logger()

		c.Set(responding.LoggerKey, &requestLogger)
	}
}
