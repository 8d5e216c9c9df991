package handler

import (
	"errors"
	"net/http"

	"bitbucket.org/crgw/availability-pricer/internal/availability"
	"bitbucket.org/crgw/availability-pricer/internal/availability/ota"
	"bitbucket.org/crgw/availability-pricer/internal/handler/middleware"
	"bitbucket.org/crgw/availability-pricer/internal/tools/responding"
	"bitbucket.org/crgw/availability-pricer/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(router *gin.Engine, service *availability.Service) {
	router.POST("/availability",
		middleware.TapLogger("availability"),
		middleware.PrepareDocument,
		func(ctx *gin.Context) {
			logger := ctx.MustGet(responding.LoggerKey).(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			slowLog.Start("availability:request")
			defer slowLog.Stop("availability:request")

			document, ok := ctx.MustGet(middleware.DocumentKey).(*ota.AvailRQ)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request document", nil)
				return
			}

			offers, err := service.Respond(*document, logger)
			if errors.Is(err, availability.ErrMissingCredentials) {
				responding.HandleError(ctx, http.StatusBadRequest, err.Error(), err)
				return
			}
			if err != nil {
				responding.HandleError(ctx, http.StatusInternalServerError, "Failed pricing availability", err)
				return
			}

			responding.Document(ctx, http.StatusOK, offers)
		},
	)
}
