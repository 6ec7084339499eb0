// Package logger configures the structured logger shared by the dcmview
// front-ends. Diagnostics go to stderr by default so the CLI's stdout stays
// pure metadata output.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration
type Config struct {
	Level  string // debug, info, warn, error; empty means warn
	Pretty bool   // console writer for interactive use
	Output io.Writer
}

// New creates a structured logger from cfg. An unknown or empty level falls
// back to warn.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", "dcmview").
		Logger()
}
