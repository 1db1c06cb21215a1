// Package session tracks which account is currently authenticated and owns
// the inactivity countdown that invalidates the session when it elapses.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/amirasaad/bankist/pkg/domain/events"
	"github.com/amirasaad/bankist/pkg/eventbus"
)

// Service holds the transient authenticated-account-plus-countdown state.
// The engine does not own a clock; an external scheduler calls Tick once per
// elapsed second while a session is active.
type Service struct {
	mu        sync.Mutex
	bus       eventbus.Bus
	logger    *slog.Logger
	start     int
	remaining int
	current   *account.Account
}

// New creates a session service with the given countdown starting value.
func New(bus eventbus.Bus, start int, logger *slog.Logger) *Service {
	return &Service{
		bus:    bus,
		logger: logger.With("service", "session"),
		start:  start,
	}
}

// Start authenticates the session for the given account and initializes the
// countdown to its starting value.
func (s *Service) Start(acc *account.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = acc
	s.remaining = s.start
	s.logger.Info("session started", "username", acc.Username, "countdown", s.remaining)
}

// Tick advances the countdown by one unit. When it reaches zero the session
// is expired: the current account reference is cleared and a SessionExpired
// event is emitted.
func (s *Service) Tick() (remaining int, expired bool) {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return 0, false
	}
	s.remaining--
	remaining = s.remaining
	if remaining > 0 {
		s.mu.Unlock()
		return remaining, false
	}
	username := s.current.Username
	s.current = nil
	s.remaining = 0
	s.mu.Unlock()

	s.logger.Info("session expired", "username", username)
	// Emit outside the lock so handlers can call back into the service.
	s.bus.Emit(context.Background(), events.SessionExpired{ //nolint:errcheck
		Username: username,
		At:       time.Now(),
	})
	return 0, true
}

// ResetCountdown restores the countdown to its starting value without
// changing the current account. Invoked after every qualifying user action.
func (s *Service) ResetCountdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.remaining = s.start
}

// Logout clears the current account reference immediately, independent of
// countdown state.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.logger.Info("session cleared", "username", s.current.Username)
	}
	s.current = nil
	s.remaining = 0
}

// Current returns the authenticated account, or nil when no session is active.
func (s *Service) Current() *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Remaining returns the countdown's current value.
func (s *Service) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}
