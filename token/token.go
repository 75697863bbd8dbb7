// Package token defines the unified code space shared by the lexer,
// grammar table, and parser/builder driver.
//
// A Code is a single unsigned word partitioned into disjoint ranges so
// that the parser's symbol stack can hold terminals, semantic actions,
// and literal pattern bytes side by side and tell them apart by a plain
// numeric comparison.
package token

import "fmt"

// Code is a tagged value from one of three disjoint ranges: Sign
// (syntactic terminals and sentinels), Action (semantic builder
// actions), or Char (a literal input byte). NFA state indices are not
// Codes at all: they use the separate nfa.StateID type.
type Code uint32

// Block boundaries. Char occupies the highest block so the lexer can
// map a raw byte b to Char(b) by a constant offset (charBase + b).
const (
	signBase   Code = 0
	actionBase Code = 256
	charBase   Code = 512
)

// blockWidth asserts, at compile time, that each of the three blocks
// has room for at least 256 distinct values without overlapping the
// next block. A future change to the block boundaries that leaves less
// room than this fails to compile instead of silently colliding Sign,
// Action, and Char codes.
const (
	_ = actionBase - signBase - 256 // actionBase must be >= signBase+256
	_ = charBase - actionBase - 256 // charBase must be >= actionBase+256
)

// Sign values: the syntactic terminals of the pattern grammar, plus two
// sentinels. END is produced by the lexer once the pattern source is
// exhausted (the grammar's end-of-input marker, written '#' in the
// production table); FAIL is produced when the lexer cannot tokenize
// the next byte(s) at all.
const (
	SignLParen Code = signBase + iota
	SignRParen
	SignStar
	SignPipe
	SignPlus
	SignQuestion
	SignDot
	SignLBrace
	SignRBrace
	SignComma
	SignLBracket
	SignRBracket
	SignMinus
	SignCaret
	SignEnd
	SignFail
)

// Action values: the nine semantic actions the builder dispatches on
// while driving the LL(1) stack. See the compile package for their
// implementations.
const (
	ActAlpha Code = actionBase + iota
	ActAnyAlpha
	ActRange
	ActUnion
	ActOr
	ActRep
	ActOneOrMore
	ActZeroOrOne
	ActRepFor
)

// Char returns the code for the literal input byte b.
func Char(b byte) Code { return charBase + Code(b) }

// IsSign reports whether c is a Sign code (including END/FAIL).
func (c Code) IsSign() bool { return c < actionBase }

// IsAction reports whether c is one of the nine builder actions.
func (c Code) IsAction() bool { return c >= actionBase && c < charBase }

// IsChar reports whether c is a literal byte code.
func (c Code) IsChar() bool { return c >= charBase }

// Byte returns the literal byte carried by a Char code. The result is
// meaningless if !c.IsChar().
func (c Code) Byte() byte { return byte(c - charBase) }

// signNames holds the printable terminal for each Sign code, in
// declaration order.
var signNames = [...]string{
	"(", ")", "*", "|", "+", "?", ".", "{", "}", ",", "[", "]", "-", "^",
	"#", "FAIL",
}

var actionNames = [...]string{
	"ACT_ALPHA", "ACT_ANY_ALPHA", "ACT_RANGE", "ACT_UNION", "ACT_OR",
	"ACT_REP", "ACT_ONE_OR_MORE", "ACT_ZERO_OR_ONE", "ACT_REP_FOR",
}

// String renders c for diagnostics and error messages.
func (c Code) String() string {
	switch {
	case c.IsSign():
		i := int(c - signBase)
		if i < len(signNames) {
			return signNames[i]
		}
		return fmt.Sprintf("Sign(%d)", c)
	case c.IsAction():
		i := int(c - actionBase)
		if i < len(actionNames) {
			return actionNames[i]
		}
		return fmt.Sprintf("Action(%d)", c)
	default:
		b := c.Byte()
		if b >= 0x20 && b < 0x7f {
			return fmt.Sprintf("Char(%q)", b)
		}
		return fmt.Sprintf("Char(0x%02x)", b)
	}
}
