// Package logging builds the zerolog loggers used across darkwatch.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer // defaults to stderr
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile logs to the configured output as usual and mirrors every event
// as JSON to file. Level filtering applies to both.
func NewWithFile(cfg Config, file io.Writer) zerolog.Logger {
	if file == nil {
		return New(cfg)
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var primary io.Writer = out
	if cfg.Format == "console" {
		primary = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(primary, file)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names yield info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from the string values found in the
// config file. "text" is accepted as an alias for console output.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)

	switch strings.ToLower(format) {
	case "json":
		cfg.Format = "json"
	case "console", "text", "":
		cfg.Format = "console"
	}

	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// DARKWATCH_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DARKWATCH_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("DARKWATCH_LOG_LEVEL"), os.Getenv("DARKWATCH_LOG_FORMAT"))
}
