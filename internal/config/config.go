// Package config provides configuration for pgn2anki.
package config

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Line extraction
	Lines *LineConfig

	// Output file and format
	Output *OutputConfig

	// Verbosity: 0=nothing, 1=summary line, 2=running commentary
	Verbosity int

	// LogLevel is a zap level name (debug, info, warn, error)
	LogLevel string

	// InputFile names the PGN source in error messages
	InputFile string

	// LogFile receives log entries unless a log file path is given
	LogFile io.Writer

	// Logger receives diagnostics. Nil means discard.
	Logger *zap.Logger
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Lines:     NewLineConfig(),
		Output:    NewOutputConfig(),
		Verbosity: 1,
		LogLevel:  "info",
		LogFile:   os.Stderr,
	}
}

// Log returns the configured logger, or a no-op logger if none is set.
func (c *Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Validate checks every sub-config and the log level.
func (c *Config) Validate() error {
	if err := c.Lines.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return nil
}
