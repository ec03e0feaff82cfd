// Package config handles application configuration from environment variables
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	// Port the HTTP server listens on
	Port int `env:"PORT" envDefault:"3000"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return cfg, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("PORT must be between 1-65535, got %d", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the listen address for the configured port
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
