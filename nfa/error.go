package nfa

import "fmt"

// InvariantError signals a bug in the builder: a semantic action
// dispatched over a fragment shape, or a state kind, that should be
// impossible to reach. It is always fatal and always a programming
// error, never a consequence of a malformed pattern.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("nfa: builder invariant violated: %s", e.Msg)
}
