package initializer

import (
	"fmt"
	"log/slog"
	"time"

	infrarepository "github.com/amirasaad/bankist/infra/repository"
	"github.com/amirasaad/bankist/pkg/currency"
	domainaccount "github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/amirasaad/bankist/pkg/repository"
	"github.com/go-playground/validator"
)

// SeedMovement is one historical ledger entry, dated relative to startup.
type SeedMovement struct {
	Amount  float64 `validate:"required"`
	DaysAgo int     `validate:"min=0"`
}

// SeedAccount is the declarative definition of one demo account.
type SeedAccount struct {
	Owner        string         `validate:"required"`
	PIN          int            `validate:"required,min=1000,max=9999"`
	InterestRate float64        `validate:"min=0"`
	Currency     string         `validate:"required,len=3"`
	Locale       string         `validate:"required"`
	Movements    []SeedMovement `validate:"required,min=1,dive"`
}

// seedAccounts is the demo data set: four customers with their transaction
// history, interest rates and PINs.
var seedAccounts = []SeedAccount{
	{
		Owner:        "Jonas Schmedtmann",
		PIN:          1111,
		InterestRate: 1.2,
		Currency:     "EUR",
		Locale:       "pt-PT",
		Movements: []SeedMovement{
			{Amount: 200, DaysAgo: 240},
			{Amount: 450, DaysAgo: 180},
			{Amount: -400, DaysAgo: 120},
			{Amount: 3000, DaysAgo: 60},
			{Amount: -650, DaysAgo: 28},
			{Amount: -130, DaysAgo: 7},
			{Amount: 70, DaysAgo: 2},
			{Amount: 1300, DaysAgo: 0},
		},
	},
	{
		Owner:        "Jessica Davis",
		PIN:          2222,
		InterestRate: 1.5,
		Currency:     "USD",
		Locale:       "en-US",
		Movements: []SeedMovement{
			{Amount: 5000, DaysAgo: 300},
			{Amount: 3400, DaysAgo: 200},
			{Amount: -150, DaysAgo: 150},
			{Amount: -790, DaysAgo: 90},
			{Amount: -3210, DaysAgo: 45},
			{Amount: -1000, DaysAgo: 14},
			{Amount: 8500, DaysAgo: 3},
			{Amount: -30, DaysAgo: 1},
		},
	},
	{
		Owner:        "Steven Thomas Williams",
		PIN:          3333,
		InterestRate: 0.7,
		Currency:     "GBP",
		Locale:       "en-GB",
		Movements: []SeedMovement{
			{Amount: 200, DaysAgo: 365},
			{Amount: -200, DaysAgo: 270},
			{Amount: 340, DaysAgo: 180},
			{Amount: -300, DaysAgo: 120},
			{Amount: -20, DaysAgo: 60},
			{Amount: 50, DaysAgo: 21},
			{Amount: 400, DaysAgo: 5},
			{Amount: -460, DaysAgo: 0},
		},
	},
	{
		Owner:        "Sarah Smith",
		PIN:          4444,
		InterestRate: 1,
		Currency:     "USD",
		Locale:       "en-US",
		Movements: []SeedMovement{
			{Amount: 430, DaysAgo: 90},
			{Amount: 1000, DaysAgo: 60},
			{Amount: 700, DaysAgo: 30},
			{Amount: 50, DaysAgo: 7},
			{Amount: 90, DaysAgo: 1},
		},
	},
}

// SeedDirectory validates the seed definitions and builds the populated
// account directory. Usernames are derived once here; a collision between
// two owners is a startup error, not a silently shadowed account.
func SeedDirectory(logger *slog.Logger) (repository.Directory, error) {
	return buildDirectory(seedAccounts, logger)
}

func buildDirectory(seeds []SeedAccount, logger *slog.Logger) (repository.Directory, error) {
	validate := validator.New()
	directory := infrarepository.NewMemoryDirectory()
	now := time.Now()
	for _, seed := range seeds {
		if err := validate.Struct(seed); err != nil {
			return nil, fmt.Errorf("invalid seed account %q: %w", seed.Owner, err)
		}
		builder := domainaccount.New().
			WithOwner(seed.Owner).
			WithPIN(seed.PIN).
			WithInterestRate(seed.InterestRate).
			WithCurrency(currency.Code(seed.Currency)).
			WithLocale(seed.Locale)
		for _, m := range seed.Movements {
			builder = builder.WithMovement(m.Amount, now.AddDate(0, 0, -m.DaysAgo))
		}
		acc, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("building account %q: %w", seed.Owner, err)
		}
		if err := directory.Add(acc); err != nil {
			return nil, fmt.Errorf("seeding account %q as %q: %w", seed.Owner, acc.Username, err)
		}
		logger.Debug("seeded account", "username", acc.Username, "movements", len(seed.Movements))
	}
	logger.Info("directory seeded", "accounts", directory.Len())
	return directory, nil
}
