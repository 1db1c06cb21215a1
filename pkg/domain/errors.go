package domain

import "errors"

// Engine outcomes. All three are expected, recoverable results returned to the
// caller; none carries a sub-reason — the guard that failed is not disclosed.
var (
	// ErrAuthFailure is returned on login when the username is unknown or the
	// PIN does not match. The two cases are reported identically.
	ErrAuthFailure = errors.New("authentication failed")
	// ErrRejected is returned when a transfer or account-closure precondition is
	// not met. No mutation has occurred when it is returned.
	ErrRejected = errors.New("operation rejected")
	// ErrDenied is returned when a loan request does not meet the affordability
	// rule. No mutation has occurred when it is returned.
	ErrDenied = errors.New("loan denied")
)
