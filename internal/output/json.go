package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/lgbarn/pgn2anki-go/internal/chess"
	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// JSONLine represents a line in JSON format.
type JSONLine struct {
	Title string   `json:"title"`
	FEN   string   `json:"fen"`
	Moves []string `json:"moves"`
}

// JSONOutput holds every line of a run.
type JSONOutput struct {
	Lines []JSONLine `json:"lines"`
}

// LineToJSON converts a line to its JSON form.
func LineToJSON(line chess.Line) JSONLine {
	moves := line.Moves
	if moves == nil {
		moves = []string{}
	}
	return JSONLine{Title: line.Title, FEN: StartingFEN(), Moves: moves}
}

// encodeMoves renders moves as a compact JSON array. Non-ASCII text and
// HTML characters are written as-is.
func encodeMoves(moves []string) (string, error) {
	if moves == nil {
		moves = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(moves); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// JSONWriter writes lines in JSON format.
// The lines form a single document, so they are buffered and written
// once, on Close. Flush writes nothing.
type JSONWriter struct {
	w      io.Writer
	lines  []JSONLine
	closed bool
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		lines: make([]JSONLine, 0),
	}
}

// WriteLine buffers a line for output.
func (jw *JSONWriter) WriteLine(line chess.Line) error {
	if jw.closed {
		return errors.Wrap(errors.ErrWriteOutput, "json writer is closed")
	}
	jw.lines = append(jw.lines, LineToJSON(line))
	return nil
}

// Flush is a no-op: a partial document is never written.
func (jw *JSONWriter) Flush() error {
	return nil
}

// Close writes the document holding every buffered line. Later calls do nothing.
func (jw *JSONWriter) Close() error {
	if jw.closed {
		return nil
	}
	jw.closed = true

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	err := enc.Encode(&JSONOutput{Lines: jw.lines})
	jw.lines = nil
	return err
}
