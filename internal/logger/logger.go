// Package logger builds the zap logger used for diagnostics.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger settings.
type Config struct {
	Level      string // debug, info, warn, error
	Encoding   string // console or json
	OutputPath string // file path, "stdout" or "stderr"; empty means Writer

	// Writer receives log entries when OutputPath is empty.
	// If both are empty, logs go to stderr.
	Writer io.Writer
}

// New creates a zap.Logger from cfg.
// An unknown level falls back to info; an unknown encoding falls back to console.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	name := strings.ToLower(cfg.Level)
	if name == "" {
		name = "info"
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level %q, using info.\n", cfg.Level)
		level.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		encoding = "console"
	}

	if cfg.OutputPath == "" && cfg.Writer != nil {
		var enc zapcore.Encoder
		if encoding == "json" {
			enc = zapcore.NewJSONEncoder(encoderCfg)
		} else {
			enc = zapcore.NewConsoleEncoder(encoderCfg)
		}
		return zap.New(zapcore.NewCore(enc, zapcore.AddSync(cfg.Writer), level)), nil
	}

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "stderr"
	}

	zapConfig := zap.Config{
		Level:             level,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{outputPath},
		ErrorOutputPaths:  []string{"stderr"},
	}

	log, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return log, nil
}
