package compile

import "github.com/llregex/llregex/nfa"

// FragKind classifies a partially-built fragment on the parser's
// fragment stack (spec.md §3's "Fragment" data model).
type FragKind uint8

const (
	// SingleChar holds a pending literal byte that has not yet been
	// materialized into states: ACT_ALPHA pushes these (ACT_ANY_ALPHA
	// allocates its states at once and pushes a MidSeq), deferring state
	// allocation until a concatenation or quantifier
	// forces it, so a lone literal at the end of a pattern never
	// allocates states it doesn't need.
	SingleChar FragKind = iota

	// MidSeq is a built sub-automaton with a single entry and a single
	// exit state, not yet known to be the whole pattern.
	MidSeq

	// CompleteSeq has the same entry/exit shape as MidSeq. It is
	// produced by the comma forms of '{m,n}' and kept by ACT_UNION and
	// ACT_OR when both operands are CompleteSeq. ACT_OR uses the
	// distinction: it splices into a CompleteSeq's existing entry/exit
	// instead of adding a fresh split/merge pair.
	CompleteSeq
)

func (k FragKind) String() string {
	switch k {
	case SingleChar:
		return "SingleChar"
	case MidSeq:
		return "MidSeq"
	case CompleteSeq:
		return "CompleteSeq"
	default:
		return "FragKind(?)"
	}
}

// Fragment is one entry on the parser's fragment stack. For
// SingleChar, ch is the pending literal and first/last are unused. For
// MidSeq and CompleteSeq, first and last are the fragment's entry and
// exit states.
type Fragment struct {
	kind  FragKind
	ch    byte
	first nfa.StateID
	last  nfa.StateID
}
