package impact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput covers synchronously rejected queries: non-positive
// revenue, unknown sector codes.
var ErrInvalidInput = errors.New("invalid input")

// NoDataError means the state exists in the multiplier table but carries no
// row for the requested sector (it was dropped during alignment). Distinct
// from StateNotFoundError so callers can tell the two apart.
type NoDataError struct {
	State  string
	Sector string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no multiplier data for sector %s in %s", e.Sector, e.State)
}

// StateNotFoundError carries fuzzy-match suggestions when a state name does
// not resolve.
type StateNotFoundError struct {
	Input       string
	Suggestions []string
}

func (e *StateNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown state %q", e.Input)
	}
	return fmt.Sprintf("unknown state %q, did you mean: %s", e.Input, strings.Join(e.Suggestions, ", "))
}

// AmbiguousInputError means a partial state name matched several states and
// the caller must disambiguate.
type AmbiguousInputError struct {
	Input   string
	Matches []string
}

func (e *AmbiguousInputError) Error() string {
	return fmt.Sprintf("state %q is ambiguous, matches: %s", e.Input, strings.Join(e.Matches, ", "))
}
