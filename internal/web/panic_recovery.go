package web

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func PanicRecovery(c *gin.Context) {
	gin.CustomRecoveryWithWriter(&recoveryWriter{
		logger: c.MustGet(responding.LoggerKey).(*zerolog.Logger),
	}, func(c *gin.Context, recovered any) {
		message, ok := recovered.(string)
		if !ok {
			message = "Unknown error, panic recovered"
		}

		responding.HandleError(c, http.StatusInternalServerError, message, fmt.Errorf("panic: %v", recovered))
	})(c)
}

type recoveryWriter struct {
	logger *zerolog.Logger
}

func (r *recoveryWriter) Write(p []byte) (n int, err error) {
	r.
		logger.
		Error().
		Str("label", "panic").
		Msg(string(p))

	return len(p), nil
}
