// Package auth authenticates users against the account directory.
package auth

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/bankist/pkg/domain"
	"github.com/amirasaad/bankist/pkg/domain/account"
	"github.com/amirasaad/bankist/pkg/domain/events"
	"github.com/amirasaad/bankist/pkg/eventbus"
	"github.com/amirasaad/bankist/pkg/repository"
	"github.com/amirasaad/bankist/pkg/service/session"
)

// Service performs logins. An unknown username and a PIN mismatch are
// reported identically as domain.ErrAuthFailure, so a caller cannot tell
// which part failed.
type Service struct {
	directory repository.Directory
	session   *session.Service
	bus       eventbus.Bus
	logger    *slog.Logger
}

// New creates an auth service.
func New(
	directory repository.Directory,
	sess *session.Service,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		directory: directory,
		session:   sess,
		bus:       bus,
		logger:    logger.With("service", "auth"),
	}
}

// Login looks up the username and checks the PIN. The PIN input is normalized
// with a strict numeric parse first, so non-numeric input can never match a
// real PIN. On success the session is started with a fresh countdown and the
// account is returned; on failure the current session is left untouched.
func (s *Service) Login(ctx context.Context, username, pin string) (*account.Account, error) {
	n, err := strconv.Atoi(strings.TrimSpace(pin))
	if err != nil {
		s.logger.Warn("login failed", "username", username)
		return nil, domain.ErrAuthFailure
	}
	acc, ok := s.directory.FindByUsername(username)
	if !ok || !acc.CheckPIN(n) {
		s.logger.Warn("login failed", "username", username)
		return nil, domain.ErrAuthFailure
	}
	s.session.Start(acc)
	s.bus.Emit(ctx, events.LoginSucceeded{ //nolint:errcheck
		Username: acc.Username,
		Owner:    acc.Owner,
		At:       time.Now(),
	})
	s.logger.Info("login succeeded", "username", acc.Username)
	return acc, nil
}
