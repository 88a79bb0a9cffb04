package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the Prediction Gateway
type Config struct {
	// Server configuration
	HTTPPort int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Model configuration
	Model ModelConfig

	// Inference engine configuration
	Engine EngineConfig
}

// ModelConfig identifies the trained model used by the prediction query
type ModelConfig struct {
	// Fully-qualified model resource name,
	// e.g. used-car-pricing.used_car_dataset.used_car_model_automl
	Table string `env:"MODEL_TABLE"`
}

// EngineConfig holds inference engine connection configuration
type EngineConfig struct {
	Provider string `env:"ENGINE_PROVIDER" envDefault:"bigquery"`

	// Project and location for the BigQuery client. When empty the client
	// resolves the project from application default credentials.
	ProjectID string `env:"BQ_PROJECT"`
	Location  string `env:"BQ_LOCATION"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate server port
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	// Validate model config
	if c.Model.Table == "" {
		return fmt.Errorf("missing env var MODEL_TABLE, e.g. used-car-pricing.used_car_dataset.used_car_model_automl")
	}

	// Validate engine config
	if c.Engine.Provider != "bigquery" {
		return fmt.Errorf("unsupported engine provider: %s (only 'bigquery' is supported)", c.Engine.Provider)
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
