// SPDX-License-Identifier: MIT
// Package: geomlib/notify
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors PANIC on nil inputs (programmer error).
//   • Publish itself never panics on user input.

package notify

import (
	"time"

	"github.com/google/uuid"
)

// Option customizes a Notifier before first use.
type Option func(*Notifier)

// WithClock overrides the timestamp source used by Publish.
// Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("notify: WithClock(nil)")
	}
	return func(n *Notifier) {
		n.now = now
	}
}

// WithIDSource overrides the event/subscription ID generator.
// Panics on nil.
func WithIDSource(next func() uuid.UUID) Option {
	if next == nil {
		panic("notify: WithIDSource(nil)")
	}
	return func(n *Notifier) {
		n.newID = next
	}
}
