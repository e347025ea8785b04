package handlers

import (
	"github.com/rs/zerolog"

	"convert-api/internal/config"
	"convert-api/internal/domain/conversion"
	"convert-api/internal/infrastructure/ratelimit"
)

// Provider wires HTTP handlers.
type Provider struct {
	Convert *ConvertHandler
}

func NewProvider(cfg *config.Config, service *conversion.Service, limiter *ratelimit.Limiter, log zerolog.Logger) *Provider {
	return &Provider{
		Convert: NewConvertHandler(cfg, service, limiter, log),
	}
}
