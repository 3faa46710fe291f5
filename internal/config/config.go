// Package config loads the web front-end's configuration from the
// environment, with an optional .env file for development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	APIURL        string        `env:"EVENTIFY_API_URL" envDefault:"https://api.eventifyseu.online"`
	Addr          string        `env:"EVENTIFY_ADDR" envDefault:":8080"`
	DBPath        string        `env:"EVENTIFY_DB_PATH" envDefault:"./data/eventify.db"`
	LogLevel      string        `env:"EVENTIFY_LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"EVENTIFY_LOG_FORMAT" envDefault:"text"`
	SecureCookies bool          `env:"EVENTIFY_SECURE_COOKIES" envDefault:"false"`
	SessionTTL    time.Duration `env:"EVENTIFY_SESSION_TTL" envDefault:"720h"`
	APITimeout    time.Duration `env:"EVENTIFY_API_TIMEOUT" envDefault:"30s"`
}

// Load reads an optional .env file, then parses environment variables
// into a Config. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("EVENTIFY_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	return cfg, nil
}
