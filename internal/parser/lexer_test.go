package parser

import (
	"strings"
	"testing"

	"github.com/lgbarn/pgn2anki-go/internal/testutil"
)

// texts returns the token texts, with markers rendered as "(" and ")".
func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.String()
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		pgn  string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", "   \n\t  ", []string{}},
		{"single move", "e4", []string{"e4"}},
		{"open marker", "(", []string{"("}},
		{"close marker", ")", []string{")"}},
		{"spaced variation", "e4 ( e5 )", []string{"e4", "(", "e5", ")"}},
		{"markers glued to moves", "Nf6)", []string{"Nf6", ")"}},
		{"glued both sides", "e4(e5)d4", []string{"e4", "(", "e5", ")", "d4"}},
		{"nested markers", "((e4))", []string{"(", "(", "e4", ")", ")"}},
		{"move numbers kept", "1. e4 e5 2. Nf3", []string{"1.", "e4", "e5", "2.", "Nf3"}},
		{"black move number kept", "12... Nf6", []string{"12...", "Nf6"}},
		{"results kept", "e4 1/2-1/2", []string{"e4", "1/2-1/2"}},
		{"newlines separate", "e4\ne5\r\nNf3", []string{"e4", "e5", "Nf3"}},
		{"non-ASCII move text", "1. Кf3", []string{"1.", "Кf3"}},
		{"invalid UTF-8 kept byte for byte", "e4 N\xfff3(\xc3)", []string{"e4", "N\xfff3", "(", "\xc3", ")"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, texts(Tokenize(tt.pgn)), tt.want)
		})
	}
}

func TestTokenize_MarkerTypes(t *testing.T) {
	tokens := Tokenize("e4 (e5)")
	want := []TokenType{MoveToken, RAVStart, MoveToken, RAVEnd}

	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("tokens[%d].Type = %v, want %v", i, tok.Type, want[i])
		}
	}
}

func TestClean(t *testing.T) {
	pgn := "[Event \"Test\"]\n1. e4 $1 {comment} ;semi\n1-0"
	got := Clean(pgn)

	for _, gone := range []string{"[Event", "$1", "comment", "semi"} {
		testutil.AssertNotContains(t, got, gone)
	}
	for _, kept := range []string{"1.", "e4", "1-0"} {
		testutil.AssertContains(t, got, kept)
	}
}

func TestTokenize_StrippedSpansSeparateTokens(t *testing.T) {
	tests := []struct {
		name string
		pgn  string
		want []string
	}{
		{"comment between moves", "e4{best}e5", []string{"e4", "e5"}},
		{"nag between moves", "e4$1e5", []string{"e4", "e5"}},
		{"multi-line comment", "e4 {line one\nline two} e5", []string{"e4", "e5"}},
		{"two comments stay separate", "e4 {a} e5 {b} Nf3", []string{"e4", "e5", "Nf3"}},
		{"semicolon to end of line", "e4 ; e5 is bad\nd5", []string{"e4", "d5"}},
		{"tag lines", "[White \"A\"]\r\n[Black \"B\"]\r\n\r\n1. e4 *", []string{"1.", "e4", "*"}},
		{"comment containing markers", "e4 {see (d4)} e5", []string{"e4", "e5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, texts(Tokenize(tt.pgn)), tt.want)
		})
	}
}

func TestTokenize_OnlyMetadata(t *testing.T) {
	inputs := []string{
		"[Event \"Test\"]\n[Site \"?\"]\n",
		"{just a comment}",
		"; a remark\n$14 $3",
		"[Event \"x\"]\n{c} $1 ;r",
	}

	for _, pgn := range inputs {
		if tokens := Tokenize(pgn); len(tokens) != 0 {
			t.Errorf("Tokenize(%q) = %v, want no tokens", pgn, texts(tokens))
		}
	}
}

// Re-tokenizing the space-joined tokens gives back the same tokens.
func TestTokenize_Idempotent(t *testing.T) {
	inputs := []string{
		"1. e4 e5 2. Nf3 Nc6 *",
		"1. d4 Nf6 (1... d5 2. c4) 2. c4 e6 (2... g6) 1/2-1/2",
		"1.e4(1.d4)e5{x}Nf3;y\n)",
		"[Event \"T\"]\n1. e4 $2 (1. c4 {English}) *",
	}

	for _, pgn := range inputs {
		first := Tokenize(pgn)
		second := Tokenize(Join(first))
		testutil.AssertEqual(t, texts(second), texts(first), pgn)
	}
}

func TestTokenizer_Next(t *testing.T) {
	tz := NewTokenizer("e4)")

	tok, ok := tz.Next()
	if !ok || tok.Type != MoveToken || tok.Text != "e4" {
		t.Fatalf("first token = %v, %v; want e4", tok, ok)
	}
	tok, ok = tz.Next()
	if !ok || tok.Type != RAVEnd {
		t.Fatalf("second token = %v, %v; want ')'", tok, ok)
	}
	if _, ok = tz.Next(); ok {
		t.Error("expected end of input")
	}
}

func TestIsMoveNumber(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"1.", true},
		{"12...", true},
		{"7", true},
		{"e4", false},
		{"1.e4", false},
		{"1-0", false},
		{".", false},
	}

	for _, tt := range tests {
		if got := IsMoveNumber(tt.text); got != tt.want {
			t.Errorf("IsMoveNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsGameResult(t *testing.T) {
	for _, result := range []string{"1-0", "0-1", "1/2-1/2", "*"} {
		if !IsGameResult(result) {
			t.Errorf("IsGameResult(%q) = false, want true", result)
		}
	}
	for _, text := range []string{"e4", "1/2", "**", "1-1"} {
		if IsGameResult(text) {
			t.Errorf("IsGameResult(%q) = true, want false", text)
		}
	}
}

func TestTokenTypeString(t *testing.T) {
	testutil.AssertEqual(t, MoveToken.String(), "MOVE")
	testutil.AssertEqual(t, RAVStart.String(), "RAV_START")
	testutil.AssertEqual(t, TokenType(42).String(), "UNKNOWN")
	testutil.AssertTrue(t, strings.Contains(Join(Tokenize("e4 (d4)")), "( d4 )"))
}
