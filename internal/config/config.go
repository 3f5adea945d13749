// Package config loads demo-actions settings from the environment and sets
// up the diagnostic logger.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DemoEnvVar names the variable holding the default demo path for commands
// that take an optional demo argument.
const DemoEnvVar = "DEMO_ACTIONS_DEMO"

const defaultLogLevel = "warn"

// Config holds the settings read from DEMO_ACTIONS_* variables.
type Config struct {
	// Color forces ANSI colors on ("1", "true", ...) or off ("0", "false", ...).
	// Empty means auto-detect.
	Color     string `env:"DEMO_ACTIONS_COLOR"`
	LogLevel  string `env:"DEMO_ACTIONS_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"DEMO_ACTIONS_LOG_FORMAT" envDefault:"text"`
	Demo      string `env:"DEMO_ACTIONS_DEMO"`
}

// Load reads Config from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	// Set but empty counts as unset.
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	return &cfg, nil
}
