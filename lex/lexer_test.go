package lex

import (
	"testing"

	"github.com/llregex/llregex/stream"
	"github.com/llregex/llregex/token"
)

func tokens(pattern string) []token.Code {
	l := New(stream.NewStringSource(pattern))
	var out []token.Code
	for {
		tok := l.Next()
		out = append(out, tok)
		if tok == token.SignEnd || tok == token.SignFail {
			break
		}
	}
	return out
}

func TestLexerSigns(t *testing.T) {
	got := tokens("(|)*+?.{,}[-]^")
	want := []token.Code{
		token.SignLParen, token.SignPipe, token.SignRParen, token.SignStar,
		token.SignPlus, token.SignQuestion, token.SignDot, token.SignLBrace,
		token.SignComma, token.SignRBrace, token.SignLBracket, token.SignMinus,
		token.SignRBracket, token.SignCaret, token.SignEnd,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerLiterals(t *testing.T) {
	got := tokens("ab9")
	want := []token.Code{token.Char('a'), token.Char('b'), token.Char('9'), token.SignEnd}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexerEscapeRoundTrip(t *testing.T) {
	// For every metacharacter m, \m yields exactly Char(m).
	metas := `()*|+?.{},[]-^\`
	for _, m := range []byte(metas) {
		l := New(stream.NewStringSource("\\" + string(m)))
		tok := l.Next()
		if tok != token.Char(m) {
			t.Errorf("escape of %q: got %v, want Char(%q)", m, tok, m)
		}
		end := l.Next()
		if end != token.SignEnd {
			t.Errorf("escape of %q: trailing token = %v, want END", m, end)
		}
	}
}

func TestLexerBadEscapeFails(t *testing.T) {
	l := New(stream.NewStringSource(`\q`))
	tok := l.Next()
	if tok != token.SignFail {
		t.Fatalf("got %v, want FAIL", tok)
	}
	if err := l.LastError(); err == nil {
		t.Fatal("LastError() = nil after FAIL")
	}
}

func TestLexerTruncatedEscapeFails(t *testing.T) {
	l := New(stream.NewStringSource(`\`))
	tok := l.Next()
	if tok != token.SignFail {
		t.Fatalf("got %v, want FAIL", tok)
	}
}

func TestLexerEmptyPatternYieldsEnd(t *testing.T) {
	l := New(stream.NewStringSource(""))
	if tok := l.Next(); tok != token.SignEnd {
		t.Fatalf("got %v, want END", tok)
	}
}

func TestLexerDollarIsLiteral(t *testing.T) {
	// $ is not a grammar sign; it is an ordinary literal byte.
	l := New(stream.NewStringSource("$"))
	if tok := l.Next(); tok != token.Char('$') {
		t.Fatalf("got %v, want Char('$')", tok)
	}
}
