package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server settings, loaded from the environment.
type Config struct {
	Addr      string        `env:"LEVELFORGE_ADDR" envDefault:":8080"`
	DBPath    string        `env:"LEVELFORGE_DB"`
	JWTSecret string        `env:"LEVELFORGE_JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"LEVELFORGE_TOKEN_TTL" envDefault:"24h"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
