// SPDX-License-Identifier: MIT
// Package: geomlib/notify
//
// types.go — event payloads, listener type and sentinel errors.

package notify

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AnyEvent subscribes a listener to every event type published on a Notifier.
const AnyEvent = "*"

// Sentinel errors for notifier operations.
var (
	// ErrNilListener indicates Subscribe was called with a nil Listener.
	ErrNilListener = errors.New("notify: listener is nil")

	// ErrEmptyEventType indicates Subscribe was called with an empty event type.
	ErrEmptyEventType = errors.New("notify: event type is empty")
)

// Listener receives published events. It runs synchronously in the
// publisher's goroutine and must not block.
type Listener func(ChangeEvent)

// ParamChange records the before/after value of one named parameter.
type ParamChange struct {
	// Name is the parameter name in lowerCamelCase, e.g. "width" or "sideA".
	Name string `json:"name"`

	// Old is the value held by the edited (original) shape.
	Old float64 `json:"old"`

	// New is the value held by the shape returned from the edit.
	New float64 `json:"new"`
}

// ChangeEvent is the immutable record published when a shape is edited.
type ChangeEvent struct {
	// ID uniquely identifies this event.
	ID uuid.UUID `json:"id"`

	// Type is the event name, "<kind>-edited".
	Type string `json:"type"`

	// Kind is the shape kind the event refers to.
	Kind string `json:"kind"`

	// Changes lists every parameter in declaration order, changed or not.
	Changes []ParamChange `json:"changes"`

	// At is the publication timestamp.
	At time.Time `json:"at"`
}

// Detail flattens Changes into the {old<Param>, new<Param>} map form,
// e.g. {"oldWidth":10,"newWidth":20,"oldHeight":5,"newHeight":10}.
// Complexity: O(len(Changes)).
func (e ChangeEvent) Detail() map[string]float64 {
	out := make(map[string]float64, 2*len(e.Changes))
	for _, c := range e.Changes {
		suffix := upperFirst(c.Name)
		out["old"+suffix] = c.Old
		out["new"+suffix] = c.New
	}

	return out
}

// Change returns the ParamChange for the named parameter, if present.
func (e ChangeEvent) Change(name string) (ParamChange, bool) {
	for _, c := range e.Changes {
		if c.Name == name {
			return c, true
		}
	}

	return ParamChange{}, false
}

// upperFirst upper-cases the first ASCII letter of s ("sideA" -> "SideA").
func upperFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
