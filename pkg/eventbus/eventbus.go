// Package eventbus defines the contract for publishing and subscribing to
// domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/bankist/pkg/domain"
)

// HandlerFunc handles a single dispatched event.
type HandlerFunc func(ctx context.Context, event domain.Event) error

// Bus dispatches domain events to registered handlers.
type Bus interface {
	Register(eventType string, handler HandlerFunc)
	Emit(ctx context.Context, event domain.Event) error
}
