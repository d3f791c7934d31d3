// Package config reads the eqv settings from EQV_* environment variables,
// optionally loaded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. Command line flags override them.
type Config struct {
	// Env selects the log format, "production" or "development".
	Env string `env:"EQV_ENV" envDefault:"development"`
	// Currency is the ISO 4217 code amounts are displayed in.
	Currency string `env:"EQV_CURRENCY" envDefault:"GBP"`
	// Scenario is the default scenario file, empty for the built-in scenario.
	Scenario string `env:"EQV_SCENARIO"`
	// Addr is the listen address of "eqv serve".
	Addr string `env:"EQV_ADDR" envDefault:":8080"`
}

// Load reads the optional dotenv files (".env" when none is given) into the
// environment, without overriding variables already set, then parses Config.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, name := range dotenv {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot load %s: %w", name, err)
		}
	}
	return Parse()
}

// Parse reads Config from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Currency = strings.ToUpper(strings.TrimSpace(cfg.Currency))
	if len(cfg.Currency) != 3 {
		return nil, fmt.Errorf("invalid EQV_CURRENCY %q: must be a 3-letter currency code", cfg.Currency)
	}
	return cfg, nil
}

// Production reports whether Env is "production".
func (c *Config) Production() bool { return c.Env == "production" }
