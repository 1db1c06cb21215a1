// Package repository defines the account directory contract. The directory is
// the full in-memory set of accounts, ordered by insertion and unique by
// derived username; removal is the only entity-deletion operation.
package repository

import (
	"errors"

	"github.com/amirasaad/bankist/pkg/domain/account"
)

var (
	// ErrDuplicateUsername is returned when adding an account whose derived
	// username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrAccountNotFound is returned when removing a username that is not in
	// the directory.
	ErrAccountNotFound = errors.New("account not found")
)

// Directory is the in-memory collection of accounts.
type Directory interface {
	// Add appends an account, enforcing username uniqueness.
	Add(acc *account.Account) error
	// FindByUsername returns the account for an exact username match, or
	// (nil, false) when absent.
	FindByUsername(username string) (*account.Account, bool)
	// Remove deletes the account with the given username permanently.
	Remove(username string) error
	// All returns the accounts in insertion order.
	All() []*account.Account
	// Len returns the number of accounts.
	Len() int
}
