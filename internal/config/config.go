package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Version is the service version reported by the health endpoint.
const Version = "1.0.0"

// Config holds the environment driven configuration for the convert service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"convert-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"CONVERT_API_PORT" envDefault:"8290"`
	LogLevel        string        `env:"CONVERT_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"CONVERT_LOG_FORMAT" envDefault:"console"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate Limiting
	RateLimitQuota      int           `env:"RATE_LIMIT_QUOTA" envDefault:"200"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"24h"`
	RateLimitMaxClients int           `env:"RATE_LIMIT_MAX_CLIENTS" envDefault:"100000"`

	// HTTP timeouts
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if cfg.RateLimitQuota <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_QUOTA must be positive, got %d", cfg.RateLimitQuota)
	}
	if cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}
	if cfg.RateLimitMaxClients <= 0 {
		cfg.RateLimitMaxClients = 100000
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
