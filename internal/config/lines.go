package config

import "github.com/lgbarn/pgn2anki-go/internal/errors"

// NoPlyLimit leaves lines at full length. A MaxPlies of 0 is a real limit.
const NoPlyLimit = -1

// LineConfig holds settings for turning a move tree into study lines.
type LineConfig struct {
	// Title is the base title of each line; empty selects the default
	Title string

	// MaxPlies truncates every line to this many plies (NoPlyLimit = none)
	MaxPlies int

	// StripMoveNumbers drops a move number glued to a move ("1.e4" -> "e4")
	// from node labels. Off by default: move text is kept as written.
	StripMoveNumbers bool
}

// NewLineConfig creates a LineConfig with default values.
func NewLineConfig() *LineConfig {
	return &LineConfig{MaxPlies: NoPlyLimit}
}

// Validate rejects negative ply limits other than NoPlyLimit.
func (c *LineConfig) Validate() error {
	if c.MaxPlies < NoPlyLimit {
		return errors.Wrapf(errors.ErrInvalidConfig, "max plies %d is negative", c.MaxPlies)
	}
	return nil
}
