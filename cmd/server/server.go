package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"convert-api/internal/config"
	"convert-api/internal/converters"
	"convert-api/internal/domain/conversion"
	"convert-api/internal/infrastructure/logger"
	"convert-api/internal/infrastructure/ratelimit"
	"convert-api/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry, err := conversion.NewRegistry(converters.Entries())
	if err != nil {
		log.Fatal().Err(err).Msg("build conversion registry")
	}
	log.Info().Int("conversions", registry.Len()).Msg("conversion registry ready")

	limiter := ratelimit.New(cfg.RateLimitQuota, cfg.RateLimitWindow, cfg.RateLimitMaxClients)
	service := conversion.NewService(registry, log)

	httpServer := httpserver.New(cfg, log, service, limiter)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
