package middleware

import (
	"net/http"

	"bitbucket.org/crgw/availability-pricer/internal/availability"
	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"github.com/gin-gonic/gin"
)

const (
	DocumentKey string = "document"
)

// PrepareDocument decodes the XML request body into the context.
func PrepareDocument(ctx *gin.Context) {
	document, err := availability.Decode(ctx.Request.Body)
	if err != nil {
		responding.HandleError(ctx, http.StatusBadRequest, err.Error(), err)
		return
	}

	ctx.Set(DocumentKey, &document)
}
