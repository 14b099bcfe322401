package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the process configuration, read from the environment with an
// optional .env-style file.
type Config struct {
	Port        string `env:"PORT" env-default:"8080"`
	LogMode     string `env:"LOG_MODE" env-default:"dev"`
	DatabaseURL string `env:"DATABASE_URL" env-required:"true"`
	JWTSecret   string `env:"JWT_SECRET" env-required:"true"`
	JWTIssuer   string `env:"JWT_ISSUER" env-default:"dutyout"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}
