package app

import (
	"context"

	"github.com/amirasaad/bankist/pkg/domain"
	"github.com/amirasaad/bankist/pkg/domain/events"
)

// setupEventBus registers the engine's own event handlers: every applied
// transfer or landed loan grant extends the session, and a closed account
// ends it.
func (a *App) setupEventBus() {
	bus := a.Deps.Bus
	sess := a.SessionService

	extend := func(ctx context.Context, e domain.Event) error {
		sess.ResetCountdown()
		return nil
	}
	bus.Register(events.TransferApplied{}.Type(), extend)
	bus.Register(events.LoanApproved{}.Type(), extend)

	bus.Register(events.AccountClosed{}.Type(), func(ctx context.Context, e domain.Event) error {
		sess.Logout()
		return nil
	})
}
