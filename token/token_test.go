package token

import "testing"

func TestCharRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := Char(byte(b))
		if !c.IsChar() {
			t.Fatalf("Char(%d).IsChar() = false", b)
		}
		if c.IsSign() || c.IsAction() {
			t.Fatalf("Char(%d) misclassified as sign/action: %v", b, c)
		}
		if got := c.Byte(); got != byte(b) {
			t.Fatalf("Char(%d).Byte() = %d, want %d", b, got, b)
		}
	}
}

func TestSignsAreDisjointFromActionsAndChars(t *testing.T) {
	signs := []Code{
		SignLParen, SignRParen, SignStar, SignPipe, SignPlus, SignQuestion,
		SignDot, SignLBrace, SignRBrace, SignComma, SignLBracket,
		SignRBracket, SignMinus, SignCaret, SignEnd, SignFail,
	}
	for _, s := range signs {
		if !s.IsSign() {
			t.Errorf("%v: IsSign() = false", s)
		}
		if s.IsAction() || s.IsChar() {
			t.Errorf("%v: misclassified", s)
		}
	}

	actions := []Code{
		ActAlpha, ActAnyAlpha, ActRange, ActUnion, ActOr, ActRep,
		ActOneOrMore, ActZeroOrOne, ActRepFor,
	}
	for _, a := range actions {
		if !a.IsAction() {
			t.Errorf("%v: IsAction() = false", a)
		}
		if a.IsSign() || a.IsChar() {
			t.Errorf("%v: misclassified", a)
		}
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	codes := []Code{SignLParen, SignEnd, SignFail, ActAlpha, ActRepFor, Char('a'), Char(0x00)}
	for _, c := range codes {
		if c.String() == "" {
			t.Errorf("%v.String() is empty", c)
		}
	}
}
