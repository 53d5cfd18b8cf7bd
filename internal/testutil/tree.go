package testutil

import (
	"strings"

	"github.com/lgbarn/pgn2anki-go/internal/chess"
)

// Root builds a synthetic root with the given continuations.
func Root(children ...*chess.MoveNode) *chess.MoveNode {
	return &chess.MoveNode{Children: children}
}

// N builds a move node with the given continuations, so that trees can be
// written inline: Root(N("e4", N("e5")), N("d4")).
func N(san string, children ...*chess.MoveNode) *chess.MoveNode {
	return &chess.MoveNode{San: san, Children: children}
}

// Moves splits a space separated move list, for writing expected lines.
func Moves(s string) []string {
	return strings.Fields(s)
}
