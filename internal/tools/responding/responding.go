package responding

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/availability-pricer/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	LoggerKey   = "logger"
	ContentType = "application/json; charset=utf-8"
)

// HandleError aborts the request with an error document. err is logged, message is returned to the client.
func HandleError(c *gin.Context, code int, message string, err error) {
	if value, ok := c.Get(LoggerKey); ok {
		if logger, ok := value.(*zerolog.Logger); ok {
			event := logger.Warn()
			if code >= 500 {
				event = logger.Error()
			}

			event.
				Err(err).
				Int("code", code).
				Msg(message)
		}
	}

	if err == nil {
		err = errors.New(message)
	}

	_ = c.Error(err)
	c.Abort()
	content, _ := schema.Marshal(schema.ErrorDocument{Error: message})
	c.Data(code, ContentType, content)
}

// Document writes value as an indented JSON response.
func Document(c *gin.Context, code int, value any) {
	content, err := schema.Marshal(value)
	if err != nil {
		HandleError(c, http.StatusInternalServerError, "Unable to serialize response", err)
		return
	}

	c.Data(code, ContentType, content)
}
