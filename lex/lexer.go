// Package lex tokenizes pattern bytes into token.Code values, handling
// the engine's single level of backslash escaping.
package lex

import (
	"github.com/llregex/llregex/stream"
	"github.com/llregex/llregex/token"
)

// signOf maps a literal terminal byte to its Sign code. Bytes not in
// this table are ordinary literal characters.
var signOf = map[byte]token.Code{
	'(': token.SignLParen,
	')': token.SignRParen,
	'*': token.SignStar,
	'|': token.SignPipe,
	'+': token.SignPlus,
	'?': token.SignQuestion,
	'.': token.SignDot,
	'{': token.SignLBrace,
	'}': token.SignRBrace,
	',': token.SignComma,
	'[': token.SignLBracket,
	']': token.SignRBracket,
	'-': token.SignMinus,
	'^': token.SignCaret,
}

// escapable is the set of bytes that may follow a backslash: self-quotes
// of every terminal plus the backslash itself. Escaping any of them
// yields the literal Char for that byte, never its Sign.
var escapable = func() map[byte]bool {
	m := map[byte]bool{'\\': true}
	for b := range signOf {
		m[b] = true
	}
	return m
}()

// Lexer tokenizes one pattern source at a time. Each Lexer owns its own
// stream.Buffer, so concurrent compilations never share state (the
// reference implementation's scratch buffer was a single process-wide
// static array; this is the per-instance fix described in spec.md §9.5).
type Lexer struct {
	buf        *stream.Buffer
	pos        int // bytes consumed so far, for error reporting
	lastErrPos int // position of the most recent FAIL, for LastError
}

// New creates a Lexer reading from src.
func New(src stream.Source) *Lexer {
	return &Lexer{buf: stream.New(src)}
}

// Pos returns the number of pattern bytes consumed so far.
func (l *Lexer) Pos() int { return l.pos }

// current returns the next unconsumed byte, transparently refilling the
// underlying buffer when it reports its EOF sentinel but more bytes may
// still be available.
func (l *Lexer) current() (byte, bool) {
	for {
		b, ok := l.buf.Current()
		if ok {
			return b, true
		}
		if !l.buf.HasMore() {
			return 0, false
		}
		l.buf.Fill()
	}
}

func (l *Lexer) advance() {
	l.buf.Advance()
	l.pos++
}

// Next consumes and returns one token. It never returns an
// Action or State code.
func (l *Lexer) Next() token.Code {
	b, ok := l.current()
	if !ok {
		return token.SignEnd
	}

	if b == '\\' {
		escPos := l.pos
		l.advance()
		eb, ok := l.current()
		if !ok {
			return l.fail(escPos)
		}
		if !escapable[eb] {
			return l.fail(escPos)
		}
		l.advance()
		return token.Char(eb)
	}

	if sign, isSign := signOf[b]; isSign {
		l.advance()
		return sign
	}

	l.advance()
	return token.Char(b)
}

// fail records that position escPos produced an invalid escape and
// returns the FAIL sentinel; the caller (normally compile.Parser) turns
// this into a fatal *lex.Error via LastError.
func (l *Lexer) fail(escPos int) token.Code {
	l.lastErrPos = escPos
	return token.SignFail
}

// LastError returns the error describing the most recent FAIL token.
// It is only meaningful immediately after Next returns token.SignFail.
func (l *Lexer) LastError() error {
	return &Error{Pos: l.lastErrPos, Msg: "unrecognized or truncated escape sequence"}
}
