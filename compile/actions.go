package compile

import (
	"github.com/llregex/llregex/nfa"
	"github.com/llregex/llregex/token"
)

// dispatch runs the builder routine for one semantic action
// (spec.md §4.6). ACT_ALPHA, ACT_ANY_ALPHA, ACT_RANGE, and
// ACT_REP_FOR also consume tokens from the lexer; the rest only
// rewrite the fragment stack.
func (p *Parser) dispatch(code token.Code) error {
	switch code {
	case token.ActAlpha:
		return p.actAlpha()
	case token.ActAnyAlpha:
		return p.actAnyAlpha()
	case token.ActRange:
		return p.actRange()
	case token.ActUnion:
		return p.actUnion()
	case token.ActOr:
		return p.actOr()
	case token.ActRep:
		return p.quantify(quantStar)
	case token.ActOneOrMore:
		return p.quantify(quantPlus)
	case token.ActZeroOrOne:
		return p.quantify(quantQuest)
	case token.ActRepFor:
		return p.actRepFor()
	default:
		return &BuilderError{Pos: p.lx.Pos(), Err: &nfa.InvariantError{Msg: "dispatch on a non-action code"}}
	}
}

// actAlpha: tok is Char(b). No states are allocated yet; materialize
// defers that until something needs real endpoints.
func (p *Parser) actAlpha() error {
	if !p.tok.IsChar() {
		return &BuilderError{Pos: p.lx.Pos(), Err: &nfa.InvariantError{Msg: "ACT_ALPHA dispatched with non-Char lookahead"}}
	}
	p.pushFrag(Fragment{kind: SingleChar, ch: p.tok.Byte()})
	return p.advance()
}

// actAnyAlpha: tok == '.'.
func (p *Parser) actAnyAlpha() error {
	q0, q1 := p.bld.New(), p.bld.New()
	p.bld.MarkDot(q0, q1)
	p.pushFrag(Fragment{kind: MidSeq, first: q0, last: q1})
	return p.advance()
}

// actRange: tok == '['. Parses a (possibly negated) character class
// terminated by ']'. Breaks on Sign(']') directly rather than the
// documented-bug's Sign('}') check (spec.md §9 open question 1).
func (p *Parser) actRange() error {
	q0, q1 := p.bld.New(), p.bld.New()
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok == token.SignCaret {
		p.bld.MarkNeg(q0, q1)
		if err := p.advance(); err != nil {
			return err
		}
	}

	seen := make(map[byte]bool)
	addMember := func(b byte) {
		if seen[b] {
			return
		}
		seen[b] = true
		p.bld.AddEdge(q0, b, q1)
	}

	for p.tok != token.SignRBracket {
		if p.tok == token.SignEnd || p.tok == token.SignFail {
			return p.parseErr("unterminated character class")
		}
		if !p.tok.IsChar() {
			return p.parseErr("expected a character in class")
		}
		a := p.tok.Byte()
		addMember(a)
		if err := p.advance(); err != nil {
			return err
		}

		if p.tok == token.SignMinus {
			if err := p.advance(); err != nil {
				return err
			}
			if !p.tok.IsChar() {
				return p.parseErr("expected a character after '-' in class")
			}
			z := p.tok.Byte()
			if !(a < z) {
				return p.parseErr("invalid class range: start must be less than end")
			}
			for c := int(a) + 1; c <= int(z); c++ {
				addMember(byte(c))
			}
			if err := p.advance(); err != nil {
				return err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ']'
		return err
	}
	p.pushFrag(Fragment{kind: MidSeq, first: q0, last: q1})
	return nil
}

// actUnion concatenates top2 (earlier) and top (later).
func (p *Parser) actUnion() error {
	b, err := p.popFrag()
	if err != nil {
		return err
	}
	a, err := p.popFrag()
	if err != nil {
		return err
	}

	switch {
	case a.kind == SingleChar && b.kind == SingleChar:
		r0, r1, r2 := p.bld.New(), p.bld.New(), p.bld.New()
		p.bld.AddEdge(r0, a.ch, r1)
		p.bld.AddEdge(r1, b.ch, r2)
		p.pushFrag(Fragment{kind: MidSeq, first: r0, last: r2})

	case a.kind == SingleChar: // b is Mid/Complete
		r := p.bld.New()
		p.bld.AddEdge(r, a.ch, b.first)
		p.pushFrag(Fragment{kind: MidSeq, first: r, last: b.last})

	case b.kind == SingleChar: // a is Mid/Complete
		t := p.bld.New()
		p.bld.AddEdge(a.last, b.ch, t)
		p.pushFrag(Fragment{kind: MidSeq, first: a.first, last: t})

	default: // both already built sequences
		p.bld.AddEps(a.last, b.first)
		kind := MidSeq
		if a.kind == CompleteSeq && b.kind == CompleteSeq {
			kind = CompleteSeq
		}
		p.pushFrag(Fragment{kind: kind, first: a.first, last: b.last})
	}
	return nil
}

// actOr alternates top2 (earlier branch) with top (later branch).
func (p *Parser) actOr() error {
	b, err := p.popFrag()
	if err != nil {
		return err
	}
	a, err := p.popFrag()
	if err != nil {
		return err
	}

	switch {
	case a.kind == SingleChar && b.kind == SingleChar:
		qs, qe := p.bld.New(), p.bld.New()
		p.bld.AddEdge(qs, a.ch, qe)
		p.bld.AddEdge(qs, b.ch, qe)
		p.pushFrag(Fragment{kind: MidSeq, first: qs, last: qe})

	case a.kind == SingleChar:
		p.pushFrag(p.orCharWithFrag(a.ch, b))

	case b.kind == SingleChar:
		p.pushFrag(p.orCharWithFrag(b.ch, a))

	case a.kind == CompleteSeq && b.kind == CompleteSeq:
		// Reuse a's entry/exit; splice b in alongside via epsilons.
		p.bld.AddEps(a.first, b.first)
		p.bld.AddEps(b.last, a.last)
		p.pushFrag(Fragment{kind: CompleteSeq, first: a.first, last: a.last})

	default: // Mid|Mid or Mid|Complete, either order
		qs, qe := p.bld.New(), p.bld.New()
		p.bld.AddEps(qs, a.first)
		p.bld.AddEps(qs, b.first)
		p.bld.AddEps(a.last, qe)
		p.bld.AddEps(b.last, qe)
		p.pushFrag(Fragment{kind: MidSeq, first: qs, last: qe})
	}
	return nil
}

// orCharWithFrag alternates a bare literal with an already-built
// fragment. A Complete side splices the char in place (no new
// states); a Mid side needs a fresh split/merge pair.
func (p *Parser) orCharWithFrag(ch byte, frag Fragment) Fragment {
	if frag.kind == CompleteSeq {
		p.bld.AddEdge(frag.first, ch, frag.last)
		return Fragment{kind: MidSeq, first: frag.first, last: frag.last}
	}
	qs, qe := p.bld.New(), p.bld.New()
	p.bld.AddEdge(qs, ch, qe)
	p.bld.AddEps(qs, frag.first)
	p.bld.AddEps(frag.last, qe)
	return Fragment{kind: MidSeq, first: qs, last: qe}
}

type quantKind uint8

const (
	quantStar quantKind = iota
	quantPlus
	quantQuest
)

// quantify implements ACT_REP ('*'), ACT_ONE_OR ('+') and
// ACT_ZERO_ONE ('?') on the stack's top fragment.
func (p *Parser) quantify(kind quantKind) error {
	top, err := p.popFrag()
	if err != nil {
		return err
	}

	var f, l nfa.StateID
	if top.kind == SingleChar {
		q0, q1 := p.bld.New(), p.bld.New()
		p.bld.AddEdge(q0, top.ch, q1)
		f, l = q0, q1
	} else {
		f, l = top.first, top.last
	}

	switch kind {
	case quantStar:
		p.bld.AddEps(f, l)
		p.bld.AddEps(l, f)
	case quantPlus:
		p.bld.AddEps(l, f)
	case quantQuest:
		p.bld.AddEps(f, l)
	}
	p.pushFrag(Fragment{kind: MidSeq, first: f, last: l})
	return nil
}
