package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// EnvPrefix prefixes environment variables that override file settings,
// e.g. PGN2ANKI_MAX_PLIES.
const EnvPrefix = "PGN2ANKI"

// fileConfig mirrors the keys accepted in a config file.
type fileConfig struct {
	Title            string `mapstructure:"title"`
	MaxPlies         int    `mapstructure:"max_plies"`
	StripMoveNumbers bool   `mapstructure:"strip_move_numbers"`
	Output           string `mapstructure:"output"`
	Format           string `mapstructure:"format"`
	LogLevel         string `mapstructure:"log_level"`
}

// LoadFile merges settings from a config file and the environment into cfg.
// An empty path reads the environment only. The file type is taken from
// the extension (yaml, toml, json, ...).
func LoadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("title", cfg.Lines.Title)
	v.SetDefault("max_plies", cfg.Lines.MaxPlies)
	v.SetDefault("strip_move_numbers", cfg.Lines.StripMoveNumbers)
	v.SetDefault("output", cfg.Output.Filename)
	v.SetDefault("format", cfg.Output.Format.String())
	v.SetDefault("log_level", cfg.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(errors.ErrInvalidConfig, "reading %s: %v", path, err)
		}
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "decoding %s: %v", path, err)
	}

	format, err := ParseOutputFormat(fc.Format)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}

	cfg.Lines.Title = fc.Title
	cfg.Lines.MaxPlies = fc.MaxPlies
	cfg.Lines.StripMoveNumbers = fc.StripMoveNumbers
	cfg.Output.Filename = fc.Output
	cfg.Output.Format = format
	cfg.LogLevel = fc.LogLevel
	return cfg.Validate()
}
