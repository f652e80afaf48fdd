// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// errors.go — sentinel errors for the shape package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach context with %w ("Edit(rectangle): width must be > 0: ...").
//   • Nothing in this package panics on user input; option constructors may
//     panic on nonsensical option values.

package shape

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a kind name that has no registered factory or
// is not one of the built-in kinds.
var ErrUnknownKind = errors.New("shape: unknown kind")

// ErrInvalidParameters indicates parameters that violate the kind's validity
// predicate: wrong count, NaN/Inf, non-positive, or a degenerate triangle.
var ErrInvalidParameters = errors.New("shape: invalid parameters")

// ErrPropertyNotApplicable indicates a kind-specific property was requested
// on a shape of another kind (e.g. radius of a triangle).
var ErrPropertyNotApplicable = errors.New("shape: property not applicable")

// ErrNilShape indicates a nil *Shape was supplied.
var ErrNilShape = errors.New("shape: nil shape")

// notApplicable builds the wrapped PropertyNotApplicable error naming both
// the property and the offending kind.
func notApplicable(property string, k Kind) error {
	return fmt.Errorf("%s: not applicable to kind %q: %w", property, k, ErrPropertyNotApplicable)
}

// invalidf wraps ErrInvalidParameters with a formatted reason.
func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameters)
}

// unknownKind wraps ErrUnknownKind with the offending name.
func unknownKind(k Kind) error {
	return fmt.Errorf("kind %q: %w", k, ErrUnknownKind)
}
