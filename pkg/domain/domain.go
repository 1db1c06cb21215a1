// Package domain holds the shared engine contracts: outcome errors and the
// domain-event marker implemented by everything published on the event bus.
package domain

// Event is implemented by all domain events dispatched on the bus.
type Event interface {
	Type() string
}
