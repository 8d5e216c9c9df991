//go:build !integration

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/availability-pricer/api"
	"bitbucket.org/crgw/availability-pricer/internal/availability"
	"bitbucket.org/crgw/availability-pricer/internal/config"
	"bitbucket.org/crgw/availability-pricer/internal/identity"
	"bitbucket.org/crgw/availability-pricer/internal/rules"
	"bitbucket.org/crgw/availability-pricer/internal/tools/logger"
	"bitbucket.org/crgw/availability-pricer/internal/web"
	"github.com/rs/zerolog"
)

func serverApp(httpServer *http.Server, logger *zerolog.Logger, stop <-chan os.Signal) int {
	done := make(chan error, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		logger.Info().Msg("Shutting down server...")
		_ = httpServer.Shutdown(context.Background())
	}()

	err := <-done
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	pricingRules, err := rules.Load(cfg.RulesFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.RulesFile).Msg("Unable to load rules")
	}

	doc, err := api.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid API description")
	}

	service := availability.NewService(
		availability.NewExtractor(pricingRules),
		availability.NewBuilder(pricingRules, availability.FixedNetPrice(pricingRules.NetPrice), identity.New()),
	)

	appRouter := web.SetupRouter(web.RouterOptions{
		Logger:     log,
		Service:    service,
		OpenAPI:    doc,
		Production: cfg.IsProduction(),
	})

	var host string
	if cfg.Test {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler: appRouter,
	}

	// Notify stop channel if SIGINT or SIGTERM is received
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	os.Exit(serverApp(httpServer, log, stop))
}
