// Package config loads process configuration from the environment,
// with a .env file overlay for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	DataPath   string `env:"DATA_PATH" envDefault:"imposterpurge.db"`

	// Empty GeminiAPIKey disables remote content generation; every
	// session resolves from the local library.
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-3-flash-preview"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"15s"`

	RandSeed int64 `env:"RAND_SEED" envDefault:"0"`
	Debug    bool  `env:"DEBUG" envDefault:"false"`
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
