// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// edit.go — immutable edits.
//
// Sequence:
//  1. Validate the new params with the same predicate as construction.
//     On failure return the error; nothing is published.
//  2. Publish "<kind>-edited" on the receiver's notifier with one
//     ParamChange per parameter (changed or not).
//  3. Build and return a new shape with a fresh notifier and the receiver's
//     options. The receiver is left untouched.

package shape

import (
	"fmt"

	"github.com/katalvlaran/geomlib/notify"
)

// Edit returns a new shape of the same kind defined by params.
//
// Errors:
//   - ErrNilShape:          nil receiver.
//   - ErrInvalidParameters: params fail the kind's predicate (no event fired).
//
// Complexity: O(arity + listeners).
func (s *Shape) Edit(params ...float64) (*Shape, error) {
	if s == nil {
		return nil, fmt.Errorf("Edit: %w", ErrNilShape)
	}
	if err := validateParams(s.kind, params); err != nil {
		return nil, fmt.Errorf("Edit(%s): %w", s.kind, err)
	}

	names := paramNames[s.kind]
	changes := make([]notify.ParamChange, len(names))
	for i, name := range names {
		changes[i] = notify.ParamChange{Name: name, Old: s.params[i], New: params[i]}
	}
	s.notes.Publish(s.kind.EditedEvent(), string(s.kind), changes)

	return build(s.kind, params, s.cfg), nil
}

// OnEdited subscribes fn to this shape's "<kind>-edited" event.
// It is shorthand for s.Notifier().Subscribe(s.Kind().EditedEvent(), fn);
// the returned function cancels the subscription.
func (s *Shape) OnEdited(fn notify.Listener) (cancel func(), err error) {
	if s == nil {
		return nil, fmt.Errorf("OnEdited: %w", ErrNilShape)
	}
	id, err := s.notes.Subscribe(s.kind.EditedEvent(), fn)
	if err != nil {
		return nil, err
	}

	return func() { s.notes.Unsubscribe(id) }, nil
}
