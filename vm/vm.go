// Package vm is the NFA simulator: subset-construction-style
// evaluation that tracks the current frontier of states, computes
// ε-closures, and advances one input byte at a time (spec.md §4.7).
package vm

import "github.com/llregex/llregex/nfa"

// SuccessFunc is invoked with the cursor position at the end of a
// successful match or search; its return value is forwarded to the
// caller of Match or Search.
type SuccessFunc[U any] func(cursor int) U

// FailureFunc is invoked with the cursor position at the point
// matching or searching gave up.
type FailureFunc[U any] func(cursor int) U

// Match performs an anchored match: the whole of input[beg:end] must
// be consumed along some path through n ending in an accept state.
func Match[U any](n *nfa.NFA, input []byte, beg, end int, onSuccess SuccessFunc[U], onFailure FailureFunc[U]) (U, bool) {
	cl := newClosure(n.NumStates())
	frontier := cl.compute(n, []nfa.StateID{n.Start()})
	var buf []nfa.StateID

	cursor := beg
	for cursor < end {
		buf = step(n, frontier, input[cursor], buf)
		cursor++
		if len(buf) == 0 {
			var zero U
			return withFallback(onFailure, cursor, zero), false
		}
		frontier = cl.compute(n, buf)
	}

	if anyAccept(n, frontier) {
		var zero U
		return withFallback(onSuccess, cursor, zero), true
	}
	var zero U
	return withFallback(onFailure, cursor, zero), false
}

// Search performs a longest-prefix search: it consumes bytes from
// input[beg:end] for as long as the frontier stays non-empty, and
// reports the length of the longest prefix that ends in an accept
// state, not necessarily the first one reached.
func Search[U any](n *nfa.NFA, input []byte, beg, end int, onSuccess SuccessFunc[U], onFailure FailureFunc[U]) (U, int) {
	cl := newClosure(n.NumStates())
	frontier := cl.compute(n, []nfa.StateID{n.Start()})
	var buf []nfa.StateID

	cursor := beg
	lastAccept := -1
	for cursor < end && len(frontier) > 0 {
		buf = step(n, frontier, input[cursor], buf)
		cursor++
		if len(buf) == 0 {
			frontier = nil
			break
		}
		frontier = cl.compute(n, buf)
		if anyAccept(n, frontier) {
			lastAccept = cursor
		}
	}

	if lastAccept != -1 && lastAccept != beg {
		var zero U
		return withFallback(onSuccess, lastAccept, zero), lastAccept - beg
	}
	var zero U
	return withFallback(onFailure, cursor, zero), 0
}

func anyAccept(n *nfa.NFA, frontier []nfa.StateID) bool {
	for _, id := range frontier {
		if n.IsAccept(id) {
			return true
		}
	}
	return false
}

// withFallback calls f if non-nil, else returns zero; Match and
// Search are usable with a nil callback when the caller only wants
// the bool/count outcome.
func withFallback[U any](f func(int) U, cursor int, zero U) U {
	if f == nil {
		return zero
	}
	return f(cursor)
}
