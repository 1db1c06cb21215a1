// Package events defines the domain events the engine publishes on the bus.
// The session service listens for applied transfers and loan grants to extend
// the countdown; the presentation layer listens for expiry and closure.
package events

import "time"

// LoginSucceeded is emitted after a successful authentication.
type LoginSucceeded struct {
	Username string
	Owner    string
	At       time.Time
}

// TransferApplied is emitted after both legs of a transfer have been recorded.
type TransferApplied struct {
	FromUsername string
	ToUsername   string
	Amount       float64
	At           time.Time
}

// LoanApproved is emitted when a loan grant lands on the ledger. With a
// deferred grant policy this fires after the processing delay, not at
// validation time.
type LoanApproved struct {
	Username string
	Amount   float64
	At       time.Time
}

// AccountClosed is emitted after an account has been removed from the directory.
type AccountClosed struct {
	Username string
	At       time.Time
}

// SessionExpired is emitted when the inactivity countdown reaches zero.
type SessionExpired struct {
	Username string
	At       time.Time
}

func (e LoginSucceeded) Type() string  { return "LoginSucceeded" }
func (e TransferApplied) Type() string { return "TransferApplied" }
func (e LoanApproved) Type() string    { return "LoanApproved" }
func (e AccountClosed) Type() string   { return "AccountClosed" }
func (e SessionExpired) Type() string  { return "SessionExpired" }
