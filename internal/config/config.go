package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the process configuration, parsed from environment variables.
type Config struct {
	Port            int           `env:"PORT"             envDefault:"5000"`
	MongoURL        string        `env:"MONGO_URL"`
	MongoDatabase   string        `env:"MONGO_DATABASE"   envDefault:"auth"`
	ClientURL       string        `env:"CLIENT_URL"`
	ResetTokenTTL   time.Duration `env:"RESET_TOKEN_TTL"  envDefault:"1h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewConfig creates a Config instance from environment variables.
func NewConfig(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.MongoURL == "" {
		return fmt.Errorf("missing MONGO_URL environment variable")
	}
	if c.ClientURL == "" {
		return fmt.Errorf("missing CLIENT_URL environment variable")
	}
	if c.ResetTokenTTL <= 0 {
		return fmt.Errorf("RESET_TOKEN_TTL must be positive")
	}

	return nil
}
