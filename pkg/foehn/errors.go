package foehn

import "fmt"

// InvalidInputError reports a user-supplied value that violates a physical
// or geometric precondition. It is returned before any computation runs, so
// a failed analysis never produces partial results.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Field, e.Reason)
}

// ConvergenceError reports that an iterative numerical method (the LCL
// root-find) failed to converge within its iteration budget. Callers can
// distinguish it from bad input and surface a diagnostic instead of a
// silently wrong number.
type ConvergenceError struct {
	Operation  string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations", e.Operation, e.Iterations)
}
