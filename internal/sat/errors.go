package sat

import "fmt"

// MalformedClauseError is returned when an input clause is empty, contains
// the literal 0, or references a variable outside [1..N].
type MalformedClauseError struct {
	Clause []int
	Reason string
}

func (e *MalformedClauseError) Error() string {
	return fmt.Sprintf("malformed clause %v: %s", e.Clause, e.Reason)
}

// invariant panics with a diagnostic message. It is used for internal
// invariant violations that must abort the process rather than be
// silently tolerated: these represent programmer errors in the solver
// itself, not bad user input.
func invariant(format string, args ...any) {
	panic("seqsat: invariant violation: " + fmt.Sprintf(format, args...))
}

