package config

import (
	"strings"

	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// OutputFormat represents the tabular format lines are exported in.
type OutputFormat int

const (
	CSV  OutputFormat = iota // Title,FEN,SAN_SEQ_JSON rows
	JSON                     // {"lines": [...]} document
)

// DefaultOutputFile is written when no destination is given.
const DefaultOutputFile = "output.csv"

var outputFormatNames = map[OutputFormat]string{
	CSV:  "csv",
	JSON: "json",
}

// String returns the name used on the command line.
func (f OutputFormat) String() string {
	if name, ok := outputFormatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	}
	return CSV, errors.Wrapf(errors.ErrUnknownFormat, "%q", name)
}

// OutputConfig holds settings related to output.
type OutputConfig struct {
	// Format selects the writer
	Format OutputFormat

	// Filename is the destination path
	Filename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:   CSV,
		Filename: DefaultOutputFile,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if _, ok := outputFormatNames[c.Format]; !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "output format %d", int(c.Format))
	}
	if c.Filename == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "empty output filename")
	}
	return nil
}
