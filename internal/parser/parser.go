package parser

import (
	"io"

	"go.uber.org/zap"

	"github.com/lgbarn/pgn2anki-go/internal/chess"
	"github.com/lgbarn/pgn2anki-go/internal/config"
	"github.com/lgbarn/pgn2anki-go/internal/errors"
)

// Parser reads PGN input and builds its move tree.
type Parser struct {
	r   io.Reader
	cfg *config.Config
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		r:   r,
		cfg: cfg,
	}
}

// ParseTree reads all input and returns the move tree it describes.
// Read failures are returned as *errors.InputError; malformed notation
// never is.
func (p *Parser) ParseTree() (*chess.MoveNode, error) {
	data, err := io.ReadAll(p.r)
	if err != nil {
		return nil, &errors.InputError{Err: err, File: p.cfg.InputFile}
	}

	tokens := Tokenize(string(data))
	root, next, stats := buildTree(tokens, 0, p.cfg.Lines.StripMoveNumbers)

	log := p.cfg.Log()
	log.Debug("move tree built",
		zap.String("input", p.cfg.InputFile),
		zap.Int("tokens", len(tokens)),
		zap.Int("moves", stats.Moves),
		zap.Int("variations", stats.Variations),
	)
	if stats.Unclosed > 0 {
		log.Warn("variations left open at end of input", zap.Int("count", stats.Unclosed))
	}
	if stats.Stopped && next < len(tokens) {
		log.Warn("unmatched ')' ended the move list",
			zap.Int("ignored_tokens", len(tokens)-next))
	}

	return root, nil
}
