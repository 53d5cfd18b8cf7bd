// pgn2anki turns a PGN opening repertoire into flashcard lines.
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"pkt.systems/version"

	"github.com/lgbarn/pgn2anki-go/internal/config"
	"github.com/lgbarn/pgn2anki-go/internal/errors"
	"github.com/lgbarn/pgn2anki-go/internal/lines"
	"github.com/lgbarn/pgn2anki-go/internal/logger"
	"github.com/lgbarn/pgn2anki-go/internal/output"
	"github.com/lgbarn/pgn2anki-go/internal/parser"
)

// Exit codes.
const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func init() {
	version.SetDefaultModule("github.com/lgbarn/pgn2anki-go")
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	flags := newFlagSet(&opts, stderr)
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	if opts.help {
		flags.Usage()
		return exitOK
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Module(), version.Current())
		return exitOK
	}

	positional := flags.Args()
	if len(positional) < 1 || len(positional) > 2 {
		flags.Usage()
		return exitUsage
	}

	cfg, err := buildConfig(flags, &opts, positional, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "pgn2anki: %v\n", err)
		return exitUsage
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		Encoding:   opts.logEncoding,
		OutputPath: opts.logFile,
		Writer:     cfg.LogFile,
	})
	if err != nil {
		fmt.Fprintf(stderr, "pgn2anki: %v\n", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()
	cfg.Logger = log

	n, err := convert(cfg)
	if err != nil {
		log.Error("conversion failed",
			zap.String("input", cfg.InputFile),
			zap.String("output", cfg.Output.Filename),
			zap.Error(err))
		fmt.Fprintf(stderr, "pgn2anki: %v\n", err)
		return exitIO
	}

	if cfg.Verbosity > 0 {
		fmt.Fprintf(stdout, "Wrote %d lines to %s\n", n, cfg.Output.Filename)
	}
	return exitOK
}

// buildConfig layers defaults, config file, environment, flags and
// positional arguments, in that order.
func buildConfig(flags changedFlags, opts *options, positional []string, stderr io.Writer) (*config.Config, error) {
	cfg := config.NewConfigBuilder().
		WithTitle(lines.DefaultTitle).
		WithInputFile(positional[0]).
		WithLogFile(stderr).
		Build()

	if err := config.LoadFile(opts.configFile, cfg); err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, flags, opts); err != nil {
		return nil, err
	}
	if len(positional) == 2 {
		cfg.Output.Filename = positional[1]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// convert reads cfg.InputFile and writes its lines to cfg.Output.Filename.
// It returns the number of lines written.
func convert(cfg *config.Config) (n int, err error) {
	in, err := os.Open(cfg.InputFile)
	if err != nil {
		return 0, &errors.InputError{Err: unwrapPathError(err), File: cfg.InputFile}
	}
	defer func() { _ = in.Close() }()

	root, err := parser.NewParser(in, cfg).ParseTree()
	if err != nil {
		return 0, err
	}
	result := lines.FromTree(root, lines.OptionsFromConfig(cfg.Lines))

	out, err := os.Create(cfg.Output.Filename)
	if err != nil {
		return 0, &errors.OutputError{Err: unwrapPathError(err), File: cfg.Output.Filename}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &errors.OutputError{Err: cerr, File: cfg.Output.Filename}
		}
	}()

	lw, err := output.NewLineWriter(cfg.Output.Format, out)
	if err != nil {
		return 0, err
	}
	if err := output.WriteLines(lw, result); err != nil {
		return 0, &errors.OutputError{Err: err, File: cfg.Output.Filename}
	}

	cfg.Log().Debug("lines written",
		zap.Int("lines", len(result)),
		zap.String("format", cfg.Output.Format.String()))
	return len(result), nil
}

// unwrapPathError drops the *fs.PathError layer; the file name is already
// carried by InputError and OutputError.
func unwrapPathError(err error) error {
	if inner := stderrors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}
