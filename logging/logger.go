// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level  string    // "debug", "info", ...; falls back to LOG_LEVEL
	Output io.Writer // defaults to os.Stderr
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure sets up the base logger. Only the first call has an effect.
func Configure(cfg Config) {
	once.Do(func() {
		level := zerolog.InfoLevel
		raw := cfg.Level
		if raw == "" {
			raw = os.Getenv("LOG_LEVEL")
		}
		if raw != "" {
			if parsed, err := zerolog.ParseLevel(raw); err == nil {
				level = parsed
			}
		}
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = time.RFC3339

		out := cfg.Output
		if out == nil {
			out = os.Stderr
		}
		base = zerolog.New(out).With().Timestamp().Str("service", "docsite").Logger()
	})
}

func WithComponent(component string) zerolog.Logger {
	Configure(Config{})
	return base.With().Str("component", component).Logger()
}
