// Package llregex compiles a textual pattern into a nondeterministic
// finite automaton and evaluates it against an input byte range in two
// modes: anchored full match, and longest-prefix search.
//
// The grammar supports literals, backslash escapes of the
// metacharacter set, grouping, alternation ('|'), concatenation,
// quantifiers ('*', '+', '?', '{m}', '{m,n}'), '.' (any byte), and
// character classes ('[...]', '[^...]'). There are no capture groups,
// no back-references, no Unicode-aware classes, and no anchors beyond
// the implicit start-anchoring of Match.
//
// Basic usage:
//
//	re, err := llregex.Compile(`a(b|c)+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("abbc") {
//	    fmt.Println("matched")
//	}
package llregex

import (
	"github.com/llregex/llregex/compile"
	"github.com/llregex/llregex/nfa"
	"github.com/llregex/llregex/vm"
)

// SuccessFunc is invoked with the cursor position where a match or
// search succeeded; its result is forwarded to the caller.
type SuccessFunc[U any] func(cursor int) U

// FailureFunc is invoked with the cursor position where matching or
// searching gave up.
type FailureFunc[U any] func(cursor int) U

// Regex is a compiled pattern, ready to be matched or searched
// against any number of inputs. It is safe for concurrent read-only
// use: Match and Search never mutate it.
type Regex struct {
	n       *nfa.NFA
	pattern string
}

// Compile parses pattern and builds its NFA. On failure the error is
// one of *lex.Error, *compile.ParseError, or *compile.BuilderError,
// and the returned *Regex is nil.
func Compile(pattern string) (*Regex, error) {
	n, err := compile.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{n: n, pattern: pattern}, nil
}

// MustCompile is Compile but panics on a bad pattern; useful for
// patterns fixed at build time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("llregex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// String returns the source pattern re was compiled from.
func (re *Regex) String() string { return re.pattern }

// Match reports whether the entirety of input[beg:end] is consumed by
// some accepting path through re (spec.md §4.7's anchored match).
//
// onSuccess and onFailure, if non-nil, are called with the final
// cursor position; their results are forwarded as U regardless of
// which branch fires.
func Match[U any](re *Regex, input []byte, beg, end int, onSuccess SuccessFunc[U], onFailure FailureFunc[U]) (U, bool) {
	return vm.Match(re.n, input, beg, end, vm.SuccessFunc[U](onSuccess), vm.FailureFunc[U](onFailure))
}

// Search finds the longest prefix of input[beg:end] accepted by re,
// returning the number of bytes consumed. A zero-length (or no) match
// is reported as failure (spec.md §4.7's search semantics).
func Search[U any](re *Regex, input []byte, beg, end int, onSuccess SuccessFunc[U], onFailure FailureFunc[U]) (U, int) {
	return vm.Search(re.n, input, beg, end, vm.SuccessFunc[U](onSuccess), vm.FailureFunc[U](onFailure))
}

// MatchString is a convenience wrapper over Match for the common case
// of an anchored whole-string match with no use for the callback
// results.
func (re *Regex) MatchString(s string) bool {
	_, ok := Match[struct{}](re, []byte(s), 0, len(s), nil, nil)
	return ok
}

// SearchString is a convenience wrapper over Search returning the
// length of the longest accepted prefix of s, or -1 if none exists.
// Search never reports a zero-length match (spec.md §4.7), so a
// result of 0 always means no match.
func (re *Regex) SearchString(s string) int {
	_, n := Search[struct{}](re, []byte(s), 0, len(s), nil, nil)
	if n == 0 {
		return -1
	}
	return n
}
