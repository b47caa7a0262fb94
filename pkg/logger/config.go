package logger

import (
	"log/slog"
	"strings"
)

// Config describes a logger in environment variables.
type Config struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"inputkit"`
	Level   string `env:"LOG_LEVEL" envDefault:""`
	Format  Format `env:"LOG_FORMAT" envDefault:""`
}

// NewFromConfig creates a logger from cfg. Level and Format override the
// environment defaults when set.
func NewFromConfig(cfg Config, opts ...Option) *slog.Logger {
	configOpts := []Option{WithEnvironment(cfg.Env, cfg.Service)}
	if cfg.Level != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err == nil {
			configOpts = append(configOpts, WithLevel(level))
		}
	}
	if cfg.Format != "" {
		configOpts = append(configOpts, WithFormat(cfg.Format))
	}
	return New(append(configOpts, opts...)...)
}
