package lines

import (
	"fmt"

	"github.com/lgbarn/pgn2anki-go/internal/chess"
	"github.com/lgbarn/pgn2anki-go/internal/config"
	"github.com/lgbarn/pgn2anki-go/internal/parser"
)

// DefaultTitle is the base title used when none is given.
const DefaultTitle = "Repertoire Line"

// Options controls how move sequences become lines.
type Options struct {
	// Title is the base of every line title. Empty selects DefaultTitle.
	Title string

	// MaxPlies keeps at most this many plies of each line. Nil means no
	// limit; a limit of 0 keeps no moves at all.
	MaxPlies *int
}

// PlyLimit returns an Options.MaxPlies value for n.
func PlyLimit(n int) *int {
	return &n
}

// OptionsFromConfig converts line settings from the program configuration.
func OptionsFromConfig(cfg *config.LineConfig) Options {
	if cfg == nil {
		return Options{}
	}
	opts := Options{Title: cfg.Title}
	if cfg.MaxPlies != config.NoPlyLimit {
		opts.MaxPlies = PlyLimit(cfg.MaxPlies)
	}
	return opts
}

// Title returns the title of the n-th line (1-based) for base.
func Title(base string, n int) string {
	if base == "" {
		base = DefaultTitle
	}
	return fmt.Sprintf("%s #%d", base, n)
}

// Truncate returns the first limit moves of seq. A negative limit, or one
// at least as long as seq, returns seq unchanged.
func Truncate(seq []string, limit int) []string {
	if limit < 0 || len(seq) <= limit {
		return seq
	}
	return seq[:limit:limit]
}

// Assemble pairs each sequence with a numbered title, truncating it to
// opts.MaxPlies when set. Titles are numbered from 1 in the order of seqs.
func Assemble(seqs [][]string, opts Options) []chess.Line {
	out := make([]chess.Line, 0, len(seqs))
	for i, seq := range seqs {
		if opts.MaxPlies != nil {
			seq = Truncate(seq, *opts.MaxPlies)
		}
		out = append(out, chess.Line{
			Title: Title(opts.Title, i+1),
			Moves: seq,
		})
	}
	return out
}

// FromTree extracts and assembles the lines of a move tree.
func FromTree(root *chess.MoveNode, opts Options) []chess.Line {
	return Assemble(Extract(root), opts)
}

// FromPGN converts PGN text straight to lines.
func FromPGN(pgn string, opts Options) []chess.Line {
	root, _ := parser.BuildTree(parser.Tokenize(pgn), 0)
	return FromTree(root, opts)
}
