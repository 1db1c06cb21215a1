package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/bankist/pkg/currency"
	domainaccount "github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func buildAccount(t *testing.T, rate float64, movements ...float64) *domainaccount.Account {
	t.Helper()
	b := domainaccount.New().
		WithOwner("Jonas Schmedtmann").
		WithPIN(1111).
		WithInterestRate(rate)
	at := time.Now().Add(-time.Duration(len(movements)) * 24 * time.Hour)
	for i, m := range movements {
		b = b.WithMovement(m, at.Add(time.Duration(i)*24*time.Hour))
	}
	acc, err := b.Build()
	require.NoError(t, err)
	return acc
}

func TestDeriveUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		owner string
		want  string
	}{
		{"Jonas Schmedtmann", "js"},
		{"Steven Thomas Williams", "stw"},
		{"Sarah Smith", "ss"},
		{"  padded   name  ", "pn"},
		{"single", "s"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.owner, func(t *testing.T) {
			assert.Equal(t, tt.want, domainaccount.DeriveUsername(tt.owner))
		})
	}
}

func TestBuilderValidation(t *testing.T) {
	t.Parallel()
	t.Run("missing owner", func(t *testing.T) {
		_, err := domainaccount.New().WithPIN(1111).Build()
		assert.ErrorIs(t, err, domainaccount.ErrOwnerRequired)
	})
	t.Run("missing pin", func(t *testing.T) {
		_, err := domainaccount.New().WithOwner("Jonas Schmedtmann").Build()
		assert.ErrorIs(t, err, domainaccount.ErrPinRequired)
	})
	t.Run("negative interest rate", func(t *testing.T) {
		_, err := domainaccount.New().
			WithOwner("Jonas Schmedtmann").
			WithPIN(1111).
			WithInterestRate(-0.1).
			Build()
		assert.ErrorIs(t, err, domainaccount.ErrNegativeInterestRate)
	})
	t.Run("unsupported currency", func(t *testing.T) {
		_, err := domainaccount.New().
			WithOwner("Jonas Schmedtmann").
			WithPIN(1111).
			WithCurrency(currency.Code("XXX")).
			Build()
		assert.ErrorIs(t, err, domainaccount.ErrUnsupportedCurrency)
	})
	t.Run("username derived at build", func(t *testing.T) {
		acc := buildAccount(t, 1.2)
		assert.Equal(t, "js", acc.Username)
	})
}

func TestCheckPIN(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2)
	assert.True(t, acc.CheckPIN(1111))
	assert.False(t, acc.CheckPIN(1112))
}

func TestBalance(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2, 200, 450, -400, 3000)
	require.InDelta(t, 3250, acc.Balance(), 1e-9)

	t.Run("recomputed after every mutation", func(t *testing.T) {
		acc.Record(-650, time.Now())
		assert.InDelta(t, 2600, acc.Balance(), 1e-9)
		acc.Record(70, time.Now())
		assert.InDelta(t, 2670, acc.Balance(), 1e-9)
	})
}

func TestRecordGrowsLedger(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2, 100)
	at := time.Now()
	m := acc.Record(-30, at)
	movements := acc.Movements()
	require.Len(t, movements, 2)
	assert.Equal(t, m.ID, movements[1].ID)
	assert.InDelta(t, -30, movements[1].Amount, 1e-9)
	assert.True(t, movements[1].At.Equal(at))
}

func TestSummary(t *testing.T) {
	t.Parallel()
	t.Run("income, expense and interest", func(t *testing.T) {
		acc := buildAccount(t, 1.2, 200, 450, -400, 3000)
		s := acc.Summary()
		assert.InDelta(t, 3650, s.Income, 1e-9)
		assert.InDelta(t, 400, s.Expense, 1e-9)
		// 200*0.012 + 450*0.012 + 3000*0.012, each term at least 1.
		assert.InDelta(t, 43.8, s.Interest, 1e-9)
	})
	t.Run("interest term of exactly 1.08 is included", func(t *testing.T) {
		acc := buildAccount(t, 1.2, 90)
		assert.InDelta(t, 1.08, acc.Summary().Interest, 1e-9)
	})
	t.Run("interest term below 1 is excluded", func(t *testing.T) {
		acc := buildAccount(t, 1.2, 50)
		assert.Zero(t, acc.Summary().Interest)
	})
	t.Run("empty filtered subsets are zero", func(t *testing.T) {
		acc := buildAccount(t, 1.2, -100, -50)
		s := acc.Summary()
		assert.Zero(t, s.Income)
		assert.Zero(t, s.Interest)
		assert.InDelta(t, 150, s.Expense, 1e-9)

		allIn := buildAccount(t, 1.2, 100)
		assert.Zero(t, allIn.Summary().Expense)
	})
}

func TestSortedMovements(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2, 200, -400, 3000, 200)
	sorted := acc.SortedMovements()
	require.Len(t, sorted, 4)
	assert.InDelta(t, -400, sorted[0].Amount, 1e-9)
	assert.InDelta(t, 3000, sorted[3].Amount, 1e-9)

	t.Run("stable for equal amounts", func(t *testing.T) {
		movements := acc.Movements()
		// The two 200s keep chronological order.
		assert.Equal(t, movements[0].ID, sorted[1].ID)
		assert.Equal(t, movements[3].ID, sorted[2].ID)
	})
	t.Run("original order untouched", func(t *testing.T) {
		movements := acc.Movements()
		assert.InDelta(t, 200, movements[0].Amount, 1e-9)
		assert.InDelta(t, -400, movements[1].Amount, 1e-9)
	})
}

func TestAnyMovementAtLeast(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2, 3000, -4000)
	assert.True(t, acc.AnyMovementAtLeast(300))
	assert.True(t, acc.AnyMovementAtLeast(3000))
	assert.False(t, acc.AnyMovementAtLeast(3001))
}

func TestFirstName(t *testing.T) {
	t.Parallel()
	acc := buildAccount(t, 1.2)
	assert.Equal(t, "Jonas", acc.FirstName())
}
