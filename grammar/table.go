// Package grammar holds the static LL(1) parse table the parser/builder
// driver consults: a mapping from (nonterminal, lookahead) to the
// right-hand side of the production to expand, mixing nonterminals,
// terminal signs, and semantic actions in the same right-hand side.
package grammar

import "github.com/llregex/llregex/token"

// Nonterminal identifies one of the grammar's seven nonterminals.
type Nonterminal uint8

const (
	E Nonterminal = iota
	EPrime
	T
	TPrime
	T1
	R
	F
)

func (n Nonterminal) String() string {
	switch n {
	case E:
		return "E"
	case EPrime:
		return "E'"
	case T:
		return "T"
	case TPrime:
		return "T'"
	case T1:
		return "T1"
	case R:
		return "R"
	case F:
		return "F"
	default:
		return "?"
	}
}

// Symbol is one element of a production's right-hand side.
type Symbol struct {
	nonterm Nonterminal
	term    token.Code
	isTerm  bool
}

// Nonterm builds a Symbol that expands to a nonterminal.
func Nonterm(n Nonterminal) Symbol { return Symbol{nonterm: n} }

// Term builds a Symbol for a terminal sign or a semantic action.
func Term(c token.Code) Symbol { return Symbol{term: c, isTerm: true} }

// IsTerminal reports whether s is a terminal/action rather than a
// nonterminal to expand.
func (s Symbol) IsTerminal() bool { return s.isTerm }

// Nonterminal returns the nonterminal s expands to. Meaningless if
// s.IsTerminal().
func (s Symbol) Nonterminal() Nonterminal { return s.nonterm }

// Code returns the terminal sign or action code s holds. Meaningless if
// !s.IsTerminal().
func (s Symbol) Code() token.Code { return s.term }

// Production is the right-hand side of a grammar rule. A nil/empty
// Production is the epsilon production.
type Production []Symbol

// cell is one (nonterminal, lookahead) table entry.
type cell struct {
	nt   Nonterminal
	look token.Code
	prod Production
}

// alphaCell is a cell keyed on "lookahead is any literal char" instead
// of a specific Sign, used uniformly wherever the grammar's FIRST/FOLLOW
// sets mention "any literal char or '('" (spec.md §4.3's alpha_trans
// slot).
type alphaCell struct {
	nt   Nonterminal
	prod Production
}

var (
	t1        = Nonterm(T1)
	r         = Nonterm(R)
	f         = Nonterm(F)
	e         = Nonterm(E)
	ePrime    = Nonterm(EPrime)
	tt        = Nonterm(T)
	tPrime    = Nonterm(TPrime)
	lparen    = Term(token.SignLParen)
	rparen    = Term(token.SignRParen)
	star      = Term(token.SignStar)
	pipe      = Term(token.SignPipe)
	plus      = Term(token.SignPlus)
	question  = Term(token.SignQuestion)
	lbrace    = Term(token.SignLBrace)
	actAlpha  = Term(token.ActAlpha)
	actAny    = Term(token.ActAnyAlpha)
	actRange  = Term(token.ActRange)
	actUnion  = Term(token.ActUnion)
	actOr     = Term(token.ActOr)
	actRep    = Term(token.ActRep)
	actOneOr  = Term(token.ActOneOrMore)
	actZeroOn = Term(token.ActZeroOrOne)
	actRepFor = Term(token.ActRepFor)
)

// cells holds every explicit (nonterminal, specific-sign) entry.
var cells = []cell{
	// E -> T E'            (unconditional: FIRST(E) = FIRST(T1))
	// T -> T1 T'           (unconditional: FIRST(T) = FIRST(T1))
	// handled via alphaCells plus the three sign lookaheads below,
	// since FIRST(T1) = {'(', '.', '['} union literal chars.
	{E, token.SignLParen, Production{t1f(), Nonterm(TPrime), Nonterm(EPrime)}},
	{E, token.SignDot, Production{t1f(), Nonterm(TPrime), Nonterm(EPrime)}},
	{E, token.SignLBracket, Production{t1f(), Nonterm(TPrime), Nonterm(EPrime)}},

	{EPrime, token.SignPipe, Production{pipe, tt, actOr, ePrime}},
	{EPrime, token.SignRParen, Production{}}, // epsilon: follow set
	{EPrime, token.SignEnd, Production{}},    // epsilon: follow set

	{T, token.SignLParen, Production{t1f(), Nonterm(TPrime)}},
	{T, token.SignDot, Production{t1f(), Nonterm(TPrime)}},
	{T, token.SignLBracket, Production{t1f(), Nonterm(TPrime)}},

	{TPrime, token.SignLParen, Production{t1, actUnion, tPrime}},
	{TPrime, token.SignDot, Production{t1, actUnion, tPrime}},
	{TPrime, token.SignLBracket, Production{t1, actUnion, tPrime}},
	{TPrime, token.SignPipe, Production{}},  // epsilon: follow set
	{TPrime, token.SignRParen, Production{}}, // epsilon: follow set
	{TPrime, token.SignEnd, Production{}},    // epsilon: follow set

	{T1, token.SignLParen, Production{f, r}},
	{T1, token.SignDot, Production{f, r}},
	{T1, token.SignLBracket, Production{f, r}},

	{R, token.SignStar, Production{star, actRep}},
	{R, token.SignPlus, Production{plus, actOneOr}},
	{R, token.SignQuestion, Production{question, actZeroOn}},
	{R, token.SignLBrace, Production{lbrace, actRepFor}},
	{R, token.SignPipe, Production{}},     // epsilon: follow set
	{R, token.SignLParen, Production{}},   // epsilon: follow set
	{R, token.SignRParen, Production{}},   // epsilon: follow set
	{R, token.SignEnd, Production{}},      // epsilon: follow set
	{R, token.SignDot, Production{}},      // epsilon: follow set
	{R, token.SignLBracket, Production{}}, // epsilon: follow set

	{F, token.SignLParen, Production{lparen, e, rparen}},
	{F, token.SignDot, Production{actAny}},
	{F, token.SignLBracket, Production{actRange}},
}

// alphaCells holds the entries keyed on "lookahead is any literal char".
var alphaCells = []alphaCell{
	{E, Production{t1f(), Nonterm(TPrime), Nonterm(EPrime)}},
	{T, Production{t1f(), Nonterm(TPrime)}},
	{TPrime, Production{t1, actUnion, tPrime}},
	{T1, Production{f, r}},
	{R, Production{}}, // epsilon: any literal char is in R's follow set
	{F, Production{actAlpha}},
}

// t1f returns the T1 nonterminal symbol; a tiny helper so the table
// above reads as "T1" rather than a repeated Nonterm(T1) call.
func t1f() Symbol { return t1 }

// tableIndex groups cells by nonterminal for O(1) lookup.
type tableIndex struct {
	signs map[token.Code]Production
	alpha Production
	hasA  bool
}

var index = buildIndex()

func buildIndex() map[Nonterminal]*tableIndex {
	m := map[Nonterminal]*tableIndex{
		E: {signs: map[token.Code]Production{}},
		EPrime: {signs: map[token.Code]Production{}},
		T: {signs: map[token.Code]Production{}},
		TPrime: {signs: map[token.Code]Production{}},
		T1: {signs: map[token.Code]Production{}},
		R: {signs: map[token.Code]Production{}},
		F: {signs: map[token.Code]Production{}},
	}
	for _, c := range cells {
		m[c.nt].signs[c.look] = c.prod
	}
	for _, a := range alphaCells {
		m[a.nt].alpha = a.prod
		m[a.nt].hasA = true
	}
	return m
}

// Lookup returns the production to expand for (nt, lookahead), and
// whether the cell is defined. ok == false is the PRODUCTION_FAILURE
// sentinel: a fatal parse error at the caller.
func Lookup(nt Nonterminal, lookahead token.Code) (Production, bool) {
	idx := index[nt]
	if prod, ok := idx.signs[lookahead]; ok {
		return prod, true
	}
	if lookahead.IsChar() && idx.hasA {
		return idx.alpha, true
	}
	return nil, false
}

// Start is the grammar's start symbol.
const Start = E
