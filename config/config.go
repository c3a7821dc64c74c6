// Package config provides SDK configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultPollInterval = 10 * time.Second
)

// Config holds all configuration for the client SDK.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	PollInterval    time.Duration
	LogLevel        string
	TokenFile       string
	TokenPassphrase string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:      strings.TrimRight(strings.TrimSpace(os.Getenv("WORKLANE_API_URL")), "/"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		TokenFile:       os.Getenv("WORKLANE_TOKEN_FILE"),
		TokenPassphrase: os.Getenv("WORKLANE_TOKEN_PASSPHRASE"),
	}

	cfg.RequestTimeout = DefaultTimeout
	if v := os.Getenv("WORKLANE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	cfg.PollInterval = DefaultPollInterval
	if v := os.Getenv("WORKLANE_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.PollInterval = d
		}
	}

	if cfg.TokenFile == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.TokenFile = home + "/.worklane/token"
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.APIBaseURL == "" {
		errs = append(errs, "WORKLANE_API_URL is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
