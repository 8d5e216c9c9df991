package web

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/availability-pricer/api"
	"bitbucket.org/crgw/availability-pricer/internal/availability"
	"bitbucket.org/crgw/availability-pricer/internal/handler"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type RouterOptions struct {
	Logger     *zerolog.Logger
	Service    *availability.Service
	OpenAPI    *openapi3.T
	Production bool
}

func SetupRouter(o RouterOptions) *gin.Engine {
	startTime := time.Now()

	if o.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(o.Logger)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(OpenapiValidator(o.OpenAPI))

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, gin.MIMEJSON, api.Document)
	})

	pprof.Register(router)

	handler.RegisterRoutes(router, o.Service)

	return router
}
