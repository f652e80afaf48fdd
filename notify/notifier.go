// SPDX-License-Identifier: MIT
// Package: geomlib/notify
//
// notifier.go — subscription list and synchronous delivery.
//
// Concurrency:
//   - subs is guarded by mu. Publish snapshots the matching listeners under
//     the read lock and delivers outside of it, so a listener may call
//     Subscribe/Unsubscribe on the same Notifier without deadlocking.

package notify

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// subscription binds a listener to one event type (or AnyEvent).
type subscription struct {
	id        uuid.UUID
	eventType string
	fn        Listener
}

// Notifier is a per-instance publish/subscribe channel.
// The zero value is not usable; construct with New.
type Notifier struct {
	mu   sync.RWMutex
	subs []subscription // subscription order == delivery order

	now   func() time.Time
	newID func() uuid.UUID
}

// New returns an empty Notifier. Defaults: time.Now and uuid.New.
// Complexity: O(len(opts)).
func New(opts ...Option) *Notifier {
	n := &Notifier{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Subscribe registers fn for events named eventType (or AnyEvent) and
// returns the subscription ID to pass to Unsubscribe.
//
// Errors:
//   - ErrEmptyEventType: eventType == "".
//   - ErrNilListener:    fn == nil.
//
// Complexity: O(1) amortized.
func (n *Notifier) Subscribe(eventType string, fn Listener) (uuid.UUID, error) {
	if eventType == "" {
		return uuid.Nil, fmt.Errorf("Subscribe: %w", ErrEmptyEventType)
	}
	if fn == nil {
		return uuid.Nil, fmt.Errorf("Subscribe(%q): %w", eventType, ErrNilListener)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.newID()
	n.subs = append(n.subs, subscription{id: id, eventType: eventType, fn: fn})

	return id, nil
}

// Unsubscribe removes the subscription with the given ID.
// Reports whether a subscription was removed; unknown IDs are a no-op.
// Complexity: O(n).
func (n *Notifier) Unsubscribe(id uuid.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, s := range n.subs {
		if s.id == id {
			n.subs = slices.Delete(n.subs, i, i+1)
			return true
		}
	}

	return false
}

// Len returns the number of live subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.subs)
}

// Publish stamps a new ChangeEvent and delivers it to every listener whose
// event type equals eventType or AnyEvent, in subscription order.
// Each listener receives its own copy of Changes.
// The stamped event is returned so callers can log or inspect it.
//
// Complexity: O(n + n·len(changes)) for n matching listeners.
func (n *Notifier) Publish(eventType, kind string, changes []ParamChange) ChangeEvent {
	evt := ChangeEvent{
		ID:      n.newID(),
		Type:    eventType,
		Kind:    kind,
		Changes: slices.Clone(changes),
		At:      n.now(),
	}

	// Snapshot matching listeners; deliver without holding the lock.
	n.mu.RLock()
	targets := make([]Listener, 0, len(n.subs))
	for _, s := range n.subs {
		if s.eventType == eventType || s.eventType == AnyEvent {
			targets = append(targets, s.fn)
		}
	}
	n.mu.RUnlock()

	for _, fn := range targets {
		delivered := evt
		delivered.Changes = slices.Clone(evt.Changes)
		fn(delivered)
	}

	return evt
}
