package compile

import (
	"github.com/llregex/llregex/nfa"
	"github.com/llregex/llregex/token"
)

// actRepFor implements ACT_REP_FOR ('{m,n}'). The opening '{' has
// already been consumed by the driver's terminal match; tok is
// whatever follows it.
func (p *Parser) actRepFor() error {
	m, mSeen, err := p.parseDecimal()
	if err != nil {
		return err
	}

	sawComma := false
	n, nSeen := 0, false
	if p.tok == token.SignComma {
		sawComma = true
		if err := p.advance(); err != nil {
			return err
		}
		n, nSeen, err = p.parseDecimal()
		if err != nil {
			return err
		}
	}

	if !sawComma && !mSeen {
		return p.parseErr("empty quantifier '{}'")
	}
	if sawComma && !mSeen && !nSeen {
		return p.parseErr("quantifier '{,}' needs at least one number")
	}
	if p.tok != token.SignRBrace {
		return p.parseErr("expected '}' to close quantifier")
	}
	if err := p.advance(); err != nil { // consume '}'
		return err
	}

	top, err := p.popFrag()
	if err != nil {
		return err
	}

	if !sawComma {
		return p.repeatUnbounded(top, m, false)
	}
	if nSeen {
		if m > n {
			return p.parseErr("quantifier requires m <= n")
		}
		return p.repeatBounded(top, m, n)
	}
	return p.repeatUnbounded(top, m, true)
}

// parseDecimal reads consecutive Char digit tokens as an unsigned
// decimal number. present is false if the lookahead wasn't a digit at
// all (distinguishing an omitted number, e.g. "{,5}", from a literal
// zero).
func (p *Parser) parseDecimal() (value int, present bool, err error) {
	for p.tok.IsChar() {
		b := p.tok.Byte()
		if b < '0' || b > '9' {
			break
		}
		value = value*10 + int(b-'0')
		present = true
		if err = p.advance(); err != nil {
			return 0, false, err
		}
	}
	return value, present, nil
}

// unit wraps whatever fragment kind top is into a fresh two-state
// shell with a known entry and exit, suitable for cloning. SingleChar
// gets a labeled edge; anything already built gets wrapped in
// epsilon-joined entry/exit states (spec.md §4.6 step 1).
func (p *Parser) unit(top Fragment) (entry, exit nfa.StateID) {
	if top.kind == SingleChar {
		q0, q1 := p.bld.New(), p.bld.New()
		p.bld.AddEdge(q0, top.ch, q1)
		return q0, q1
	}
	p0, p1 := p.bld.New(), p.bld.New()
	p.bld.AddEps(p0, top.first)
	p.bld.AddEps(top.last, p1)
	return p0, p1
}

// repeatUnbounded builds "at least m" repetitions of top. comma
// records whether this came from "{m,}" (true, result is CompleteSeq)
// or bare "{m}" (false, result is MidSeq; spec.md §4.6 point 6).
func (p *Parser) repeatUnbounded(top Fragment, m int, comma bool) error {
	switch m {
	case 0:
		return p.quantifyAndTagResult(top, quantStar, comma)
	case 1:
		return p.quantifyAndTagResult(top, quantPlus, comma)
	}

	entry, exit := p.unit(top)
	return p.chainAndLoop(entry, exit, m, comma)
}

// chainAndLoop rebuilds the "at least m" chain from scratch: m-1
// mandatory copies concatenated, then a final copy wired with a
// self-loop so it can repeat without bound.
func (p *Parser) chainAndLoop(unitEntry, unitExit nfa.StateID, m int, comma bool) error {
	curExit := unitExit
	for k := 2; k < m; k++ {
		nEntry, nExit := p.bld.CloneExit(unitEntry, unitExit)
		p.bld.AddEps(curExit, nEntry)
		curExit = nExit
	}
	lastEntry, lastExit := p.bld.CloneExit(unitEntry, unitExit)
	p.bld.AddEps(curExit, lastEntry)
	p.bld.AddEps(lastExit, lastEntry) // unbounded repeat of the final copy

	kind := MidSeq
	if comma {
		kind = CompleteSeq
	}
	p.pushFrag(Fragment{kind: kind, first: unitEntry, last: lastExit})
	return nil
}

// quantifyAndTagResult delegates the {0} / {1} (and {0,} / {1,})
// degenerate shapes to '*'/'+' and then overrides the resulting
// fragment's kind to match whether a comma was present.
func (p *Parser) quantifyAndTagResult(top Fragment, kind quantKind, comma bool) error {
	p.pushFrag(top)
	if err := p.quantify(kind); err != nil {
		return err
	}
	if comma {
		n := len(p.frags) - 1
		p.frags[n].kind = CompleteSeq
	}
	return nil
}

// repeatBounded builds the general {m,n} construction for every shape
// except {0,1}, which goes to '?' (spec.md §4.6 steps 1-5): a chain of n repetitions of top with
// optional-exit epsilons from every admissible count in [m, n].
func (p *Parser) repeatBounded(top Fragment, m, n int) error {
	if m == 0 && n == 1 {
		return p.quantifyAndTagResult(top, quantQuest, true)
	}

	unitEntry, unitExit := p.unit(top)
	type rep struct{ entry, exit nfa.StateID }
	reps := make([]rep, 0, n)
	reps = append(reps, rep{unitEntry, unitExit})

	curExit := unitExit
	for k := 2; k <= n; k++ {
		cEntry, cExit := p.bld.CloneExit(unitEntry, unitExit)
		p.bld.AddEps(curExit, cEntry)
		reps = append(reps, rep{cEntry, cExit})
		curExit = cExit
	}

	sink := p.bld.New()
	if m == 0 {
		p.bld.AddEps(unitEntry, sink)
	}
	start := m
	if start == 0 {
		start = 1
	}
	for k := start; k <= n; k++ {
		p.bld.AddEps(reps[k-1].exit, sink)
	}

	p.pushFrag(Fragment{kind: CompleteSeq, first: unitEntry, last: sink})
	return nil
}
