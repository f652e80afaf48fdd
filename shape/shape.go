// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// shape.go — the Shape tagged union and its uniform capabilities.
//
// Invariants:
//   - kind is a built-in Kind and params satisfy validateParams(kind, params).
//   - params is never aliased outside the value (Params returns a copy).
//   - notes is created together with the value and never replaced.

package shape

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/geomlib/notify"
)

// Shape is an immutable geometric value. Construct it with New,
// NewRectangle, NewCircle, NewTriangle, or a factory.
type Shape struct {
	kind   Kind
	params []float64 // declaration order, see paramNames
	notes  *notify.Notifier
	cfg    config
}

// New validates params for kind k and returns a fresh shape with its own
// notifier.
//
// Errors:
//   - ErrUnknownKind:       k is not a built-in kind.
//   - ErrInvalidParameters: params fail the kind's predicate.
//
// Complexity: O(arity).
func New(k Kind, params []float64, opts ...Option) (*Shape, error) {
	if err := validateParams(k, params); err != nil {
		return nil, err
	}

	return build(k, params, newConfig(opts...)), nil
}

// build assembles a shape from already validated params.
func build(k Kind, params []float64, cfg config) *Shape {
	p := make([]float64, len(params))
	copy(p, params)

	return &Shape{
		kind:   k,
		params: p,
		notes:  notify.New(cfg.notifyOpts...),
		cfg:    cfg,
	}
}

// Kind returns the discriminator ("" for a nil receiver).
func (s *Shape) Kind() Kind {
	if s == nil {
		return ""
	}
	return s.kind
}

// Params returns a copy of the defining parameters in declaration order.
func (s *Shape) Params() []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s.params))
	copy(out, s.params)

	return out
}

// Notifier returns the change channel owned by this instance.
func (s *Shape) Notifier() *notify.Notifier {
	if s == nil {
		return nil
	}
	return s.notes
}

// Area returns the full-precision area (0 for a nil receiver).
func (s *Shape) Area() float64 {
	if s == nil {
		return 0
	}
	return area(s.kind, s.params)
}

// Perimeter returns the full-precision perimeter; for a circle this is the
// circumference (0 for a nil receiver).
func (s *Shape) Perimeter() float64 {
	if s == nil {
		return 0
	}
	return perimeter(s.kind, s.params)
}

// area and perimeter dispatch on the kind; params are assumed to match its
// arity.
func area(k Kind, p []float64) float64 {
	switch k {
	case KindRectangle:
		return rectangleArea(p[0], p[1])
	case KindCircle:
		return circleArea(p[0])
	case KindTriangle:
		return heronArea(p[0], p[1], p[2])
	}

	return 0
}

func perimeter(k Kind, p []float64) float64 {
	switch k {
	case KindRectangle:
		return rectanglePerimeter(p[0], p[1])
	case KindCircle:
		return circlePerimeter(p[0])
	case KindTriangle:
		return p[0] + p[1] + p[2]
	}

	return 0
}

// Equal reports geometric equality: same kind and identical parameters.
// Notifiers and options do not take part.
func (s *Shape) Equal(o *Shape) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.kind != o.kind || len(s.params) != len(o.params) {
		return false
	}
	for i := range s.params {
		if s.params[i] != o.params[i] {
			return false
		}
	}

	return true
}

// String renders the shape as "kind(p1, p2, ...)".
func (s *Shape) String() string {
	if s == nil {
		return "<nil>"
	}
	parts := make([]string, len(s.params))
	for i, v := range s.params {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return string(s.kind) + "(" + strings.Join(parts, ", ") + ")"
}
