package iomodel

import "fmt"

// AlignmentError means a state's source tables could not be reconciled into
// a common sector set. The batch skips the state and continues.
type AlignmentError struct {
	State  string
	Reason string
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("alignment failed for %s: %s", e.State, e.Reason)
}

// SingularMatrixError means (I-A) or the household-augmented variant could
// not be inverted for a state. The batch skips the state and continues.
type SingularMatrixError struct {
	State string
	Err   error
}

func (e *SingularMatrixError) Error() string {
	return fmt.Sprintf("leontief inversion failed for %s: %v", e.State, e.Err)
}

func (e *SingularMatrixError) Unwrap() error { return e.Err }
