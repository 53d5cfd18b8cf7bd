// flags.go - Command-line flag definitions and configuration
package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/lgbarn/pgn2anki-go/internal/config"
	"github.com/lgbarn/pgn2anki-go/internal/errors"
	"github.com/lgbarn/pgn2anki-go/internal/lines"
)

// options holds the parsed command line.
type options struct {
	outputFile  string
	title       string
	maxPlies    int
	stripNums   bool
	format      string
	configFile  string
	logLevel    string
	logEncoding string
	logFile     string
	quiet       bool
	showVersion bool
	help        bool
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("pgn2anki", pflag.ContinueOnError)
	flags.SetOutput(stderr)

	flags.StringVarP(&opts.outputFile, "output-csv", "o", config.DefaultOutputFile, "Output file (a second argument overrides it)")
	flags.StringVarP(&opts.title, "title", "t", lines.DefaultTitle, "Base title of each line")
	flags.IntVarP(&opts.maxPlies, "max-plies", "m", config.NoPlyLimit, "Keep at most N plies of each line (-1 = no limit)")
	flags.BoolVar(&opts.stripNums, "strip-move-numbers", false, "Drop move numbers glued to moves (1.e4 -> e4)")
	flags.StringVarP(&opts.format, "format", "f", "csv", "Output format: csv, json")
	flags.StringVarP(&opts.configFile, "config", "c", "", "Config file (yaml, toml or json)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logEncoding, "log-format", "console", "Log encoding: console, json")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Don't print the summary line")
	flags.BoolVar(&opts.showVersion, "version", false, "Show version and exit")
	flags.BoolVarP(&opts.help, "help", "h", false, "Show this help")

	flags.SetInterspersed(true)
	flags.Usage = func() { usage(stderr, flags) }
	return flags
}

func usage(w io.Writer, flags *pflag.FlagSet) {
	fmt.Fprintln(w, "Usage: pgn2anki [flags] <input.pgn> [output]")
	fmt.Fprintln(w, "\nWrites every line of a PGN repertoire, variations included, as a flashcard import file.")
	fmt.Fprintln(w, "\nFlags:")
	flags.PrintDefaults()
}

// changedFlags reports which flags were set on the command line.
type changedFlags interface {
	Changed(name string) bool
}

// applyFlags copies explicitly set flags over cfg, so a config file keeps
// the values the command line leaves alone.
func applyFlags(cfg *config.Config, flags changedFlags, opts *options) error {
	if flags.Changed("title") {
		cfg.Lines.Title = opts.title
	}
	if flags.Changed("max-plies") {
		cfg.Lines.MaxPlies = opts.maxPlies
	}
	if flags.Changed("strip-move-numbers") {
		cfg.Lines.StripMoveNumbers = opts.stripNums
	}
	if flags.Changed("output-csv") {
		cfg.Output.Filename = opts.outputFile
	}
	if flags.Changed("format") {
		format, err := config.ParseOutputFormat(opts.format)
		if err != nil {
			return errors.Wrap(errors.ErrInvalidConfig, err.Error())
		}
		cfg.Output.Format = format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if opts.quiet {
		cfg.Verbosity = 0
	}
	return nil
}
