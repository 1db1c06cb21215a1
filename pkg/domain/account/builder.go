package account

import (
	"strconv"
	"time"

	"github.com/amirasaad/bankist/pkg/currency"
	"github.com/amirasaad/bankist/pkg/utils"
	"github.com/google/uuid"
)

// Builder provides a fluent API for constructing Account instances. It is the
// only way to create an account, so every account in the directory has a
// derived username, a hashed PIN and a validated currency.
type Builder struct {
	id           uuid.UUID
	owner        string
	pin          int
	interestRate float64
	currency     currency.Code
	locale       string
	movements    []Movement
}

// New creates a new Builder with sensible defaults.
func New() *Builder {
	return &Builder{
		id:       uuid.New(),
		currency: currency.DefaultCurrency,
	}
}

// WithOwner sets the owner's full display name. This is a mandatory field;
// the username is derived from it at build time.
func (b *Builder) WithOwner(owner string) *Builder {
	b.owner = owner
	return b
}

// WithPIN sets the numeric secret. It is hashed at build time and never
// stored in the clear.
func (b *Builder) WithPIN(pin int) *Builder {
	b.pin = pin
	return b
}

// WithInterestRate sets the percentage applied to qualifying deposits.
func (b *Builder) WithInterestRate(rate float64) *Builder {
	b.interestRate = rate
	return b
}

// WithCurrency sets the presentation currency. Defaults to USD.
func (b *Builder) WithCurrency(code currency.Code) *Builder {
	b.currency = code
	return b
}

// WithLocale sets the presentation locale, opaque to the engine.
func (b *Builder) WithLocale(locale string) *Builder {
	b.locale = locale
	return b
}

// WithMovement appends a historical movement. This is for hydrating seed
// accounts and test setup; live mutations go through Account.Record.
func (b *Builder) WithMovement(amount float64, at time.Time) *Builder {
	b.movements = append(b.movements, Movement{ID: uuid.New(), Amount: amount, At: at})
	return b
}

// Build validates all invariants and returns the new Account.
func (b *Builder) Build() (*Account, error) {
	if DeriveUsername(b.owner) == "" {
		return nil, ErrOwnerRequired
	}
	if b.pin <= 0 {
		return nil, ErrPinRequired
	}
	if b.interestRate < 0 {
		return nil, ErrNegativeInterestRate
	}
	if !currency.IsSupported(b.currency) {
		return nil, ErrUnsupportedCurrency
	}
	pinHash, err := utils.HashPin(strconv.Itoa(b.pin))
	if err != nil {
		return nil, err
	}
	movements := make([]Movement, len(b.movements))
	copy(movements, b.movements)
	return &Account{
		ID:           b.id,
		Owner:        b.owner,
		Username:     DeriveUsername(b.owner),
		InterestRate: b.interestRate,
		Currency:     b.currency,
		Locale:       b.locale,
		pinHash:      pinHash,
		movements:    movements,
		dirty:        true,
	}, nil
}
