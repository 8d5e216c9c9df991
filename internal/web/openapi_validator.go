package web

import (
	"io"
	"net/http"

	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"
)

func init() {
	openapi3filter.RegisterBodyDecoder("application/xml", rawBodyDecoder)
	openapi3filter.RegisterBodyDecoder("text/xml", rawBodyDecoder)
}

// XML bodies are checked as plain strings, the document itself is decoded by the handler.
func rawBodyDecoder(body io.Reader, _ http.Header, _ *openapi3.SchemaRef, _ openapi3filter.EncodingFn) (interface{}, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	return string(data), nil
}

// OpenapiValidator rejects requests that do not match the API description.
// Routes the description does not know about are passed through.
func OpenapiValidator(doc *openapi3.T) gin.HandlerFunc {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		panic(err)
	}

	options := &openapi3filter.Options{
		MultiError: false,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			return
		}

		err = openapi3filter.ValidateRequest(c.Request.Context(), &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		})
		if err != nil {
			responding.HandleError(c, http.StatusBadRequest, "Invalid request: "+err.Error(), err)
			return
		}
	}
}
