package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CorrelationIdHeader = "x-correlation-id"
	CorrelationIdKey    = "correlationId"
)

// CorrelationId middleware adds a correlation id to the context from the request header
// and echoes it back on the response.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader(CorrelationIdHeader)
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set(CorrelationIdKey, correlationId)
	c.Header(CorrelationIdHeader, correlationId)
}
