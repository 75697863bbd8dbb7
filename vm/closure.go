package vm

import (
	"github.com/llregex/llregex/internal/sparse"
	"github.com/llregex/llregex/nfa"
)

// closure computes ε-closures against a reused sparse.SparseSet
// visited table, sized once per Match/Search call (spec.md §4.7: "a
// visited bitmap of size |states|").
type closure struct {
	visited *sparse.SparseSet
	states  []nfa.StateID
	stack   []nfa.StateID
}

func newClosure(numStates int) *closure {
	return &closure{visited: sparse.NewSparseSet(uint32(numStates))}
}

// compute returns the ε-closure of seed. The returned slice is only
// valid until the next call to compute.
func (c *closure) compute(n *nfa.NFA, seed []nfa.StateID) []nfa.StateID {
	c.visited.Clear()
	c.states = c.states[:0]
	c.stack = append(c.stack[:0], seed...)

	for len(c.stack) > 0 {
		last := len(c.stack) - 1
		id := c.stack[last]
		c.stack = c.stack[:last]

		if c.visited.Contains(uint32(id)) {
			continue
		}
		c.visited.Insert(uint32(id))
		c.states = append(c.states, id)

		if st := n.State(id); st != nil {
			c.stack = append(c.stack, st.Eps()...)
		}
	}
	return c.states
}

// step advances every state in a closure by one byte, collecting the
// resulting frontier (spec.md §4.7's per-kind Step dispatch already
// lives on nfa.State; this just fans it out over a closure).
func step(n *nfa.NFA, cl []nfa.StateID, b byte, out []nfa.StateID) []nfa.StateID {
	out = out[:0]
	for _, id := range cl {
		st := n.State(id)
		if st == nil {
			continue
		}
		if tgt, ok := st.Step(b); ok {
			out = append(out, tgt)
		}
	}
	return out
}
