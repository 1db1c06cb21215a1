package repository

import (
	"sync"

	"github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/amirasaad/bankist/pkg/repository"
)

// MemoryDirectory is the in-memory Directory implementation backing the demo.
// It keeps insertion order; lookups are linear, which is fine at demo scale.
type MemoryDirectory struct {
	mu       sync.RWMutex
	accounts []*account.Account
}

// NewMemoryDirectory creates an empty directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{}
}

// Add appends an account, rejecting duplicate usernames.
func (d *MemoryDirectory) Add(acc *account.Account) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.accounts {
		if existing.Username == acc.Username {
			return repository.ErrDuplicateUsername
		}
	}
	d.accounts = append(d.accounts, acc)
	return nil
}

// FindByUsername returns the account for an exact username match.
func (d *MemoryDirectory) FindByUsername(username string) (*account.Account, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, acc := range d.accounts {
		if acc.Username == username {
			return acc, true
		}
	}
	return nil, false
}

// Remove deletes the account with the given username permanently. Subsequent
// lookups, transfers and logins can no longer reach it.
func (d *MemoryDirectory) Remove(username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, acc := range d.accounts {
		if acc.Username == username {
			d.accounts = append(d.accounts[:i], d.accounts[i+1:]...)
			return nil
		}
	}
	return repository.ErrAccountNotFound
}

// All returns the accounts in insertion order.
func (d *MemoryDirectory) All() []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*account.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// Len returns the number of accounts.
func (d *MemoryDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.accounts)
}

// Ensure MemoryDirectory implements the Directory interface.
var _ repository.Directory = (*MemoryDirectory)(nil)
