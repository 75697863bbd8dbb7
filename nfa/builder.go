package nfa

import (
	"fmt"

	"github.com/llregex/llregex/internal/conv"
)

// Builder grows an NFA arena incrementally while the parser/builder
// driver (compile package) interprets semantic actions. States are
// appended monotonically and never removed; Reset discards the whole
// arena for a fresh compile attempt.
type Builder struct {
	states []State
}

// NewBuilder creates an empty arena.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

// New allocates one fresh Common state with no transitions yet and
// returns its ID.
func (b *Builder) New() StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, State{id: id, kind: Common})
	return id
}

// AddEps appends v to u's epsilon-transition list.
func (b *Builder) AddEps(u, v StateID) {
	s := b.state(u)
	s.eps = append(s.eps, v)
}

// AddEdge inserts (byt -> v) into u's labeled-transition mapping. On a
// Common state this records an exact-match transition. On a NegClass
// state v is ignored and byt is instead recorded as an excluded byte
// (spec.md §4.5: "add_edge on a NegClass state registers excluded
// bytes"). Duplicate registration of the same byte on the same state is
// an *InvariantError, as is calling AddEdge on a DotAny state.
func (b *Builder) AddEdge(u StateID, byt byte, v StateID) {
	s := b.state(u)
	switch s.kind {
	case Common:
		if s.edges == nil {
			s.edges = make(map[byte]StateID)
		}
		if _, dup := s.edges[byt]; dup {
			panic(&InvariantError{Msg: fmt.Sprintf("duplicate edge on byte %q at state %d", byt, u)})
		}
		s.edges[byt] = v
	case NegClass:
		if s.excluded == nil {
			s.excluded = make(map[byte]struct{})
		}
		if _, dup := s.excluded[byt]; dup {
			panic(&InvariantError{Msg: fmt.Sprintf("duplicate excluded byte %q at state %d", byt, u)})
		}
		s.excluded[byt] = struct{}{}
	default:
		panic(&InvariantError{Msg: fmt.Sprintf("AddEdge on %s state %d", s.kind, u)})
	}
}

// MarkDot turns u into a DotAny state whose sole target is v.
func (b *Builder) MarkDot(u, v StateID) {
	s := b.state(u)
	s.kind = DotAny
	s.otherwise = v
}

// MarkNeg turns u into a NegClass state whose "otherwise" (every
// non-excluded byte) target is v. Subsequent AddEdge calls on u
// enumerate the excluded bytes.
func (b *Builder) MarkNeg(u, v StateID) {
	s := b.state(u)
	s.kind = NegClass
	s.otherwise = v
}

func (b *Builder) state(id StateID) *State {
	if int(id) >= len(b.states) {
		panic(&InvariantError{Msg: fmt.Sprintf("state %d out of bounds", id)})
	}
	return &b.states[id]
}

// NumStates returns the arena's current size.
func (b *Builder) NumStates() int { return len(b.states) }

// Clone deep-copies the sub-automaton reachable from root by following
// both epsilon and labeled edges, appending the copies to the same
// arena and returning the copy's root ID. ACT_REP_FOR duplicates its
// fragment through the CloneExit variant below (spec.md §4.6 step 2-3).
// Below
// smallCloneThreshold states a flat slice remap table is used; above it,
// a map, matching the spec's "array below threshold, hash map above"
// guidance.
func (b *Builder) Clone(root StateID) StateID {
	copyRoot, _ := b.cloneInternal(root, nil)
	return copyRoot
}

// CloneExit behaves like Clone but also reports where a second state
// (typically a fragment's exit point) landed in the copy. Used by
// ACT_REP_FOR (spec.md §4.6 step 2-3), which needs both endpoints of
// each cloned repetition, not just the entry.
func (b *Builder) CloneExit(root, exit StateID) (rootCopy, exitCopy StateID) {
	copyRoot, tracked := b.cloneInternal(root, []StateID{exit})
	return copyRoot, tracked[0]
}

func (b *Builder) cloneInternal(root StateID, track []StateID) (StateID, []StateID) {
	const smallCloneThreshold = 64

	visitedOrder := []StateID{}
	var remapSlice []StateID // indexed by (id - root); used while traversal stays small
	var remapMap map[StateID]StateID
	useMap := false

	// offset converts an arena-wide id to an index usable with
	// remapSlice. Fragments are allocated contiguously starting at
	// root, so this stays small even though StateIDs are arena-wide.
	offset := func(id StateID) int {
		if id < root {
			return -1
		}
		return int(id - root)
	}

	remapped := func(id StateID) (StateID, bool) {
		if useMap {
			v, ok := remapMap[id]
			return v, ok
		}
		off := offset(id)
		if off >= 0 && off < len(remapSlice) && remapSlice[off] != InvalidState {
			return remapSlice[off], true
		}
		return InvalidState, false
	}
	setRemap := func(id, newID StateID) {
		if useMap {
			remapMap[id] = newID
			return
		}
		off := offset(id)
		if off < 0 {
			// id falls outside the contiguous run starting at root;
			// fall back to a map rather than mis-sizing the slice.
			useMap = true
			remapMap = make(map[StateID]StateID, len(visitedOrder)*2+1)
			for _, v := range visitedOrder {
				if o := offset(v); o >= 0 && o < len(remapSlice) {
					remapMap[v] = remapSlice[o]
				}
			}
			remapMap[id] = newID
			return
		}
		for off >= len(remapSlice) {
			remapSlice = append(remapSlice, InvalidState)
		}
		remapSlice[off] = newID
	}

	// BFS over the fragment, allocating a fresh copy for every state
	// reached, before wiring any transitions (so forward references
	// resolve once every state has a copy).
	queue := []StateID{root}
	if _, ok := remapped(root); !ok {
		setRemap(root, b.New())
		visitedOrder = append(visitedOrder, root)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(visitedOrder) > smallCloneThreshold && !useMap {
			useMap = true
			remapMap = make(map[StateID]StateID, len(visitedOrder)*2)
			for _, v := range visitedOrder {
				if off := offset(v); off >= 0 && off < len(remapSlice) {
					remapMap[v] = remapSlice[off]
				}
			}
		}

		s := b.state(cur)
		for _, nb := range neighbors(s) {
			if _, ok := remapped(nb); !ok {
				setRemap(nb, b.New())
				visitedOrder = append(visitedOrder, nb)
				queue = append(queue, nb)
			}
		}
	}

	// Wire the copies to mirror each original state's transitions,
	// preserving kind.
	for _, orig := range visitedOrder {
		origState := b.state(orig)
		copyID, _ := remapped(orig)
		copyState := b.state(copyID)
		copyState.kind = origState.kind
		for _, e := range origState.eps {
			target, _ := remapped(e)
			b.AddEps(copyID, target)
		}
		switch origState.kind {
		case Common:
			for byt, tgt := range origState.edges {
				target, _ := remapped(tgt)
				b.AddEdge(copyID, byt, target)
			}
		case DotAny:
			target, _ := remapped(origState.otherwise)
			copyState.otherwise = target
		case NegClass:
			target, _ := remapped(origState.otherwise)
			copyState.otherwise = target
			for byt := range origState.excluded {
				b.AddEdge(copyID, byt, InvalidState)
			}
		}
	}

	rootCopy, _ := remapped(root)
	trackedCopies := make([]StateID, len(track))
	for i, id := range track {
		trackedCopies[i], _ = remapped(id)
	}
	return rootCopy, trackedCopies
}

// neighbors returns every state s can reach in one step, epsilon or
// labeled, for Clone's BFS traversal.
func neighbors(s *State) []StateID {
	var out []StateID
	out = append(out, s.eps...)
	switch s.kind {
	case Common:
		for _, tgt := range s.edges {
			out = append(out, tgt)
		}
	case DotAny, NegClass:
		out = append(out, s.otherwise)
	}
	return out
}

// Reset discards all arena state, as if the Builder were freshly
// created (spec.md §3's "clear/rebuild operation").
func (b *Builder) Reset() {
	b.states = b.states[:0]
}

// Build finalizes the arena into a read-only NFA with the given start
// and accept states.
func (b *Builder) Build(start StateID, accepts []StateID) *NFA {
	acc := make(map[StateID]struct{}, len(accepts))
	for _, a := range accepts {
		acc[a] = struct{}{}
	}
	return &NFA{states: b.states, start: start, accepts: acc}
}
