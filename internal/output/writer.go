// Package output writes extracted lines as flashcard import files.
package output

import (
	"encoding/csv"
	"io"

	"github.com/lgbarn/pgn2anki-go/internal/chess"
	"github.com/lgbarn/pgn2anki-go/internal/config"
	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// Column names of the CSV header row.
var csvHeader = []string{"Title", "FEN", "SAN_SEQ_JSON"}

// LineWriter is the interface for writing lines to output.
// Different implementations handle different output formats (CSV, JSON).
type LineWriter interface {
	// WriteLine writes a single line to the output.
	WriteLine(line chess.Line) error

	// Flush flushes buffered rows to the underlying writer. Writers that
	// produce a single document write nothing until Close.
	Flush() error

	// Close flushes the writer. It does not close the underlying writer.
	Close() error
}

// NewLineWriter returns the writer for format.
func NewLineWriter(format config.OutputFormat, w io.Writer) (LineWriter, error) {
	switch format {
	case config.CSV:
		return NewCSVWriter(w), nil
	case config.JSON:
		return NewJSONWriter(w), nil
	}
	return nil, errors.Wrapf(errors.ErrUnknownFormat, "format %d", int(format))
}

// WriteLines writes every line and closes lw.
func WriteLines(lw LineWriter, lines []chess.Line) error {
	for _, line := range lines {
		if err := lw.WriteLine(line); err != nil {
			return err
		}
	}
	return lw.Close()
}

// CSVWriter writes one row per line, after a header row.
// Rows end in CRLF as RFC 4180 asks.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a new CSV writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	return &CSVWriter{w: cw}
}

// WriteLine writes the header if needed, then the row for line.
func (cw *CSVWriter) WriteLine(line chess.Line) error {
	if err := cw.writeHeader(); err != nil {
		return err
	}
	moves, err := encodeMoves(line.Moves)
	if err != nil {
		return err
	}
	return cw.w.Write([]string{line.Title, StartingFEN(), moves})
}

func (cw *CSVWriter) writeHeader() error {
	if cw.wroteHeader {
		return nil
	}
	cw.wroteHeader = true
	return cw.w.Write(csvHeader)
}

// Flush writes buffered rows to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// Close writes the header if no line was written, then flushes.
func (cw *CSVWriter) Close() error {
	if err := cw.writeHeader(); err != nil {
		return err
	}
	return cw.Flush()
}
