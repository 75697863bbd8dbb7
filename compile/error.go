package compile

import "fmt"

// ParseError covers every syntactic failure the driver can report:
// production-miss, terminal mismatch, early end, trailing tokens, and
// the bad-{m,n}/bad-class cases raised from within a semantic action.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("compile: %s at position %d", e.Msg, e.Pos)
}

// BuilderError wraps an *nfa.InvariantError recovered while a semantic
// action was driving the builder. It is always a programming error,
// never a consequence of the input pattern.
type BuilderError struct {
	Pos int
	Err error
}

func (e *BuilderError) Error() string {
	return fmt.Sprintf("compile: builder invariant violated at position %d: %v", e.Pos, e.Err)
}

func (e *BuilderError) Unwrap() error { return e.Err }
