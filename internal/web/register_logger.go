package web

import (
	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterLogger(logger *zerolog.Logger) func(c *gin.Context) {
	return func(c *gin.Context) {
		correlationId := c.MustGet(CorrelationIdKey).(string)

		requestLogger := logger.
			With().
			Str(CorrelationIdKey, correlationId).
			Logger()

		c.Set(responding.LoggerKey, &requestLogger)
	}
}
