// Package account authorizes and applies the mutating ledger operations:
// transfers, loan grants and account closure.
package account

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/bankist/pkg/domain"
	domainaccount "github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/amirasaad/bankist/pkg/domain/events"
	"github.com/amirasaad/bankist/pkg/eventbus"
	"github.com/amirasaad/bankist/pkg/repository"
	"github.com/amirasaad/bankist/pkg/service/session"
)

// Service validates and applies inter-account transfers, loan grants and
// account closure against ledger state. Rejections are all-or-nothing: when
// any precondition fails, no ledger or directory mutation has happened.
type Service struct {
	directory repository.Directory
	session   *session.Service
	bus       eventbus.Bus
	loanDelay time.Duration
	logger    *slog.Logger
}

// New creates an authorizer service. A zero loanDelay applies loan grants
// immediately; a positive delay defers the grant after validation.
func New(
	directory repository.Directory,
	sess *session.Service,
	bus eventbus.Bus,
	loanDelay time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		directory: directory,
		session:   sess,
		bus:       bus,
		loanDelay: loanDelay,
		logger:    logger.With("service", "account"),
	}
}

// Transfer moves amount from one account to the receiver named by toUsername.
// Preconditions, all required: amount > 0, the receiver exists, the sender's
// remaining balance stays strictly positive, and the receiver is not the
// sender. On success both legs are recorded at the same instant and a
// TransferApplied event is emitted; the reason for a rejection is not
// disclosed.
func (s *Service) Transfer(
	ctx context.Context,
	from *domainaccount.Account,
	toUsername string,
	amount float64,
) error {
	// Positive-form guards: each precondition must affirmatively hold, so a
	// NaN amount fails the first comparison instead of slipping past an
	// inverted one.
	to, found := s.directory.FindByUsername(toUsername)
	if !(amount > 0) ||
		!found ||
		!(from.Balance()-amount > 0) ||
		to.Username == from.Username {
		s.logger.Warn("transfer rejected", "from", from.Username, "to", toUsername)
		return domain.ErrRejected
	}
	at := time.Now()
	from.Record(-amount, at)
	to.Record(amount, at)
	s.bus.Emit(ctx, events.TransferApplied{ //nolint:errcheck
		FromUsername: from.Username,
		ToUsername:   to.Username,
		Amount:       amount,
		At:           at,
	})
	s.logger.Info("transfer applied", "from", from.Username, "to", to.Username, "amount", amount)
	return nil
}

// RequestLoan grants a loan of amount when amount > 0 and at least one
// existing movement, of either sign, covers a tenth of it. With a zero
// processing delay the grant lands immediately; otherwise validation is
// synchronous but the grant is applied after the delay. While a grant is
// pending the ledger is not locked, so a transfer may be validated against a
// balance that does not yet reflect it — an accepted ordering gap, and a
// pending grant cannot be cancelled.
func (s *Service) RequestLoan(
	ctx context.Context,
	acc *domainaccount.Account,
	amount float64,
) error {
	if !(amount > 0) || !acc.AnyMovementAtLeast(amount/10) {
		s.logger.Warn("loan denied", "username", acc.Username, "amount", amount)
		return domain.ErrDenied
	}
	grant := func() {
		at := time.Now()
		acc.Record(amount, at)
		s.bus.Emit(context.Background(), events.LoanApproved{ //nolint:errcheck
			Username: acc.Username,
			Amount:   amount,
			At:       at,
		})
		s.logger.Info("loan granted", "username", acc.Username, "amount", amount)
	}
	if s.loanDelay > 0 {
		s.logger.Info("loan approved, grant deferred",
			"username", acc.Username, "amount", amount, "delay", s.loanDelay)
		time.AfterFunc(s.loanDelay, grant)
		return nil
	}
	grant()
	return nil
}

// Close removes an account from the directory permanently. The supplied
// username and PIN must both match the currently authenticated session
// account exactly; any mismatch rejects with no mutation. On success an
// AccountClosed event is emitted, which also clears the session.
func (s *Service) Close(ctx context.Context, username, pin string) error {
	current := s.session.Current()
	if current == nil {
		return domain.ErrRejected
	}
	n, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil || username != current.Username || !current.CheckPIN(n) {
		s.logger.Warn("closure rejected", "username", username)
		return domain.ErrRejected
	}
	if err := s.directory.Remove(username); err != nil {
		s.logger.Warn("closure rejected", "username", username)
		return domain.ErrRejected
	}
	s.bus.Emit(ctx, events.AccountClosed{ //nolint:errcheck
		Username: username,
		At:       time.Now(),
	})
	s.logger.Info("account closed", "username", username)
	return nil
}
