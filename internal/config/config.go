// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the CLI.
type Config struct {
	// APIURL is the base URL of the Calcana API.
	APIURL string `env:"CALCANA_API_URL" envDefault:"http://localhost:8080"`
	// ConfigDir overrides where the credential is persisted. Empty selects
	// the user config directory.
	ConfigDir string `env:"CALCANA_CONFIG_DIR"`
	// LogLevel sets zap's level: debug, info, warn, error.
	LogLevel string `env:"CALCANA_LOG_LEVEL" envDefault:"warn"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
