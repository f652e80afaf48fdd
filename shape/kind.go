// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// kind.go — the kind discriminator and its static parameter schema.

package shape

import "fmt"

// Kind discriminates the shape variant.
type Kind string

// Built-in kinds.
const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
)

// editedSuffix is appended to the kind name to form the edit event type.
const editedSuffix = "-edited"

// paramNames is the single source of truth for each kind's parameter list,
// in declaration order. Arity checks, change events and summaries use it.
var paramNames = map[Kind][]string{
	KindRectangle: {"width", "height"},
	KindCircle:    {"radius"},
	KindTriangle:  {"sideA", "sideB", "sideC"},
}

// Kinds returns the built-in kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindRectangle, KindCircle, KindTriangle}
}

// ParseKind maps a name onto a built-in Kind.
// Returns ErrUnknownKind for anything else.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := paramNames[k]; !ok {
		return "", fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
	}

	return k, nil
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is a built-in kind.
func (k Kind) Valid() bool {
	_, ok := paramNames[k]
	return ok
}

// Arity returns the number of defining parameters (0 for unknown kinds).
func (k Kind) Arity() int { return len(paramNames[k]) }

// ParamNames returns a copy of the parameter names in declaration order.
func (k Kind) ParamNames() []string {
	names := paramNames[k]
	out := make([]string, len(names))
	copy(out, names)

	return out
}

// EditedEvent returns the notifier event type published when a shape of
// this kind is edited, e.g. "rectangle-edited".
func (k Kind) EditedEvent() string { return string(k) + editedSuffix }
