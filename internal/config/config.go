package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Discord DiscordConfig
	Storage StorageConfig
	Log     LogConfig
}

// DiscordConfig holds bot connection and command settings
type DiscordConfig struct {
	Token         string `env:"DISCORD_BOT_TOKEN"`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`
}

// StorageConfig holds persistence settings
type StorageConfig struct {
	DataFile string `env:"TOURNEY_DATA_FILE" envDefault:"tourney_data.json"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks that all values required to run the bot are present and
// valid. It returns an error describing all validation failures, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Discord.Token == "" {
		errs = append(errs, errors.New("DISCORD_BOT_TOKEN is required"))
	}
	if c.Discord.CommandPrefix == "" {
		errs = append(errs, errors.New("COMMAND_PREFIX must not be empty"))
	}
	if c.Storage.DataFile == "" {
		errs = append(errs, errors.New("TOURNEY_DATA_FILE must not be empty"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SlogLevel maps the configured level name onto a slog level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL must be 'debug', 'info', 'warn' or 'error', got %q", l.Level)
	}
}
