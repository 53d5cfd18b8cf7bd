// Package parser provides PGN tokenizing and move tree construction.
package parser

import "regexp"

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// MoveToken is any run of non-whitespace text outside the RAV markers.
	// Move numbers and results are move tokens at this level.
	MoveToken TokenType = iota
	RAVStart
	RAVEnd
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	MoveToken: "MOVE",
	RAVStart:  "RAV_START",
	RAVEnd:    "RAV_END",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the source text of the token: the move text, "(" or ")".
	Text string
}

// String returns the token as it appears in PGN text.
func (t Token) String() string {
	switch t.Type {
	case RAVStart:
		return "("
	case RAVEnd:
		return ")"
	}
	return t.Text
}

// Move creates a move token.
func Move(text string) Token {
	return Token{Type: MoveToken, Text: text}
}

var (
	startToken = Token{Type: RAVStart, Text: "("}
	endToken   = Token{Type: RAVEnd, Text: ")"}
)

// Game termination markers.
var gameResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

var (
	moveNumberPattern       = regexp.MustCompile(`^[0-9]+\.*$`)
	moveNumberPrefixPattern = regexp.MustCompile(`^[0-9]+\.+`)
)

// IsMoveNumber returns true if text is a bare move number such as "1." or "12...".
func IsMoveNumber(text string) bool {
	return moveNumberPattern.MatchString(text)
}

// IsGameResult returns true if text is one of the game termination markers.
func IsGameResult(text string) bool {
	return gameResults[text]
}

// stripMoveNumber removes a move number glued to a move, as in "1.e4" or
// "12...Nf6". Text without such a prefix is returned unchanged.
func stripMoveNumber(text string) string {
	if loc := moveNumberPrefixPattern.FindStringIndex(text); loc != nil && loc[1] < len(text) {
		return text[loc[1]:]
	}
	return text
}
