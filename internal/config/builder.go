package config

import (
	"io"

	"go.uber.org/zap"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithTitle sets the base title of extracted lines.
func (b *ConfigBuilder) WithTitle(title string) *ConfigBuilder {
	b.cfg.Lines.Title = title
	return b
}

// WithMaxPlies sets the ply limit of extracted lines.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.Lines.MaxPlies = n
	return b
}

// WithStripMoveNumbers sets whether glued move numbers are dropped from moves.
func (b *ConfigBuilder) WithStripMoveNumbers(strip bool) *ConfigBuilder {
	b.cfg.Lines.StripMoveNumbers = strip
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithOutputFile sets the output destination.
func (b *ConfigBuilder) WithOutputFile(name string) *ConfigBuilder {
	b.cfg.Output.Filename = name
	return b
}

// WithInputFile sets the name used for the input in error messages.
func (b *ConfigBuilder) WithInputFile(name string) *ConfigBuilder {
	b.cfg.InputFile = name
	return b
}

// WithLogFile sets the stream for user-facing messages.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogger sets the diagnostics logger.
func (b *ConfigBuilder) WithLogger(log *zap.Logger) *ConfigBuilder {
	b.cfg.Logger = log
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
