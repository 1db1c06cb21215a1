package account

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/bankist/pkg/currency"
	"github.com/amirasaad/bankist/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrOwnerRequired is returned when an account is built without an owner name.
	ErrOwnerRequired = errors.New("owner is required")
	// ErrPinRequired is returned when an account is built without a positive numeric PIN.
	ErrPinRequired = errors.New("pin is required")
	// ErrNegativeInterestRate is returned when an account is built with a negative interest rate.
	ErrNegativeInterestRate = errors.New("interest rate must not be negative")
	// ErrUnsupportedCurrency is returned when an account is built with an unknown currency code.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Movement is a single signed transaction recorded against an account.
// A positive amount is a deposit, incoming transfer, or loan; a negative
// amount is a withdrawal or outgoing transfer. Amount and timestamp travel
// together, so the ledger can never hold an amount without its instant.
type Movement struct {
	ID     uuid.UUID
	Amount float64
	At     time.Time
}

// Summary is the aggregate view of one account's ledger.
type Summary struct {
	Income   float64 // sum of all positive movements
	Expense  float64 // absolute sum of all negative movements
	Interest float64 // sum of per-deposit interest terms that reach at least 1
}

// Account is one bank customer and their ledger.
//
// Invariants:
//   - Username is derived from Owner and never changes afterwards.
//   - The cached balance is recomputed from the full movement list whenever
//     the ledger has changed since it was last read; it is never served stale.
//   - All operations are safe for concurrent use, enforced by a mutex. The
//     engine is single-threaded apart from a deferred loan grant landing from
//     a timer goroutine.
type Account struct {
	ID           uuid.UUID
	Owner        string
	Username     string
	InterestRate float64 // percent applied to qualifying deposits
	Currency     currency.Code
	Locale       string // presentation metadata, opaque to the engine

	pinHash   string
	movements []Movement
	balance   float64
	dirty     bool
	mu        sync.Mutex
}

// DeriveUsername computes the short login identifier for an owner name: the
// lowercased first letter of each whitespace-separated word, joined with no
// separator ("Jonas Schmedtmann" -> "js"). Uniqueness is the caller's problem;
// the seed loader fails fast on collisions.
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r := []rune(word)
		b.WriteRune(r[0])
	}
	return b.String()
}

// CheckPIN reports whether the given numeric PIN matches the account's PIN.
func (a *Account) CheckPIN(pin int) bool {
	return utils.CheckPinHash(strconv.Itoa(pin), a.pinHash)
}

// Record appends a movement with the given amount and timestamp to the ledger
// and invalidates the cached balance. It performs no validation of sign or
// magnitude; that is the authorizer's job.
func (a *Account) Record(amount float64, at time.Time) Movement {
	a.mu.Lock()
	defer a.mu.Unlock()
	m := Movement{ID: uuid.New(), Amount: amount, At: at}
	a.movements = append(a.movements, m)
	a.dirty = true
	return m
}

// Balance returns the sum of all movements. The result is cached on the
// account and recomputed from scratch whenever the ledger changed, so it
// cannot drift incrementally.
func (a *Account) Balance() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.dirty {
		var sum float64
		for _, m := range a.movements {
			sum += m.Amount
		}
		a.balance = sum
		a.dirty = false
	}
	return a.balance
}

// Summary computes income, expense and interest over the current ledger.
// Empty filtered subsets yield 0. An interest term is earned per positive
// movement (amount * rate / 100) and only counts when that individual term
// reaches at least 1 — a floor per qualifying deposit, not on the total.
func (a *Account) Summary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	var s Summary
	for _, m := range a.movements {
		switch {
		case m.Amount > 0:
			s.Income += m.Amount
			if term := m.Amount * a.InterestRate / 100; term >= 1 {
				s.Interest += term
			}
		case m.Amount < 0:
			s.Expense += -m.Amount
		}
	}
	return s
}

// Movements returns a copy of the ledger in insertion (chronological) order.
func (a *Account) Movements() []Movement {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Movement, len(a.movements))
	copy(out, a.movements)
	return out
}

// SortedMovements returns a copy of the ledger ordered ascending by amount.
// The sort is stable: equal amounts keep their chronological order.
func (a *Account) SortedMovements() []Movement {
	out := a.Movements()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount < out[j].Amount })
	return out
}

// AnyMovementAtLeast reports whether any single movement, of either sign,
// reaches the given threshold. The loan affordability rule is built on this.
func (a *Account) AnyMovementAtLeast(threshold float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, m := range a.movements {
		if m.Amount >= threshold {
			return true
		}
	}
	return false
}

// FirstName returns the first word of the owner's name, for greetings.
func (a *Account) FirstName() string {
	if fields := strings.Fields(a.Owner); len(fields) > 0 {
		return fields[0]
	}
	return a.Owner
}
