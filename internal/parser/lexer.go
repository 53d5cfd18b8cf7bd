package parser

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Patterns for the spans removed before scanning, in the order they are applied.
var (
	tagLinePattern    = regexp.MustCompile(`(?m)^\[[^\n]*\][ \t\r]*$`)
	commentPattern    = regexp.MustCompile(`(?s)\{.*?\}`)
	restOfLinePattern = regexp.MustCompile(`;[^\n]*`)
	nagPattern        = regexp.MustCompile(`\$[0-9]+`)
)

// Clean strips tag pairs, comments and NAGs from PGN text.
// Every removed span is replaced by a single space so that the text on
// either side of it stays separated.
func Clean(pgn string) string {
	s := tagLinePattern.ReplaceAllString(pgn, " ")
	s = commentPattern.ReplaceAllString(s, " ")
	s = restOfLinePattern.ReplaceAllString(s, " ")
	s = nagPattern.ReplaceAllString(s, " ")
	return s
}

// Tokenizer splits cleaned PGN text into tokens.
type Tokenizer struct {
	text string
	pos  int

	// A marker found while a move was being gathered.
	pending *Token
}

// NewTokenizer creates a tokenizer over pgn. The text is cleaned first.
func NewTokenizer(pgn string) *Tokenizer {
	return &Tokenizer{text: Clean(pgn)}
}

// Next returns the next token, or false at end of input.
// Move text is sliced from the source, so bytes that are not valid UTF-8
// pass through unchanged.
func (tz *Tokenizer) Next() (Token, bool) {
	if tz.pending != nil {
		tok := *tz.pending
		tz.pending = nil
		return tok, true
	}

	start := -1
	for tz.pos < len(tz.text) {
		at := tz.pos
		r, size := utf8.DecodeRuneInString(tz.text[at:])
		tz.pos += size

		switch {
		case r == '(' || r == ')':
			marker := startToken
			if r == ')' {
				marker = endToken
			}
			if start >= 0 {
				tz.pending = &marker
				return Move(tz.text[start:at]), true
			}
			return marker, true

		case unicode.IsSpace(r):
			if start >= 0 {
				return Move(tz.text[start:at]), true
			}

		default:
			if start < 0 {
				start = at
			}
		}
	}

	if start >= 0 {
		return Move(tz.text[start:]), true
	}
	return Token{}, false
}

// Tokenize converts PGN text into tokens in input order.
func Tokenize(pgn string) []Token {
	tz := NewTokenizer(pgn)
	var tokens []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Join renders tokens back to text separated by single spaces.
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}
