// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// factory.go — one factory per built-in kind.
//
// Each factory:
//   • Create(params...) validates and builds; invalid params never yield a shape.
//   • Validate(shape) re-checks the predicate and rejects shapes of another kind.
// The zero value of every factory, and a nil *XFactory, is ready to use
// with default options.

package shape

import "fmt"

// factory holds the configuration shared by the kind-specific factories.
// ready is false for zero-value factories, which fall back to defaults.
type factory struct {
	cfg   config
	ready bool
}

func newFactory(opts []Option) factory {
	return factory{cfg: newConfig(opts...), ready: true}
}

func (f factory) create(k Kind, params []float64) (*Shape, error) {
	if err := validateParams(k, params); err != nil {
		return nil, fmt.Errorf("Create(%s): %w", k, err)
	}
	cfg := f.cfg
	if !f.ready {
		cfg = newConfig()
	}

	return build(k, params, cfg), nil
}

func (f factory) validate(k Kind, s *Shape) bool {
	return s != nil && s.kind == k && validateParams(s.kind, s.params) == nil
}

// RectangleFactory creates rectangles: Create(width, height).
type RectangleFactory struct{ f factory }

// NewRectangleFactory returns a RectangleFactory with the given options.
func NewRectangleFactory(opts ...Option) *RectangleFactory {
	return &RectangleFactory{f: newFactory(opts)}
}

// Create builds a rectangle from (width, height).
func (r *RectangleFactory) Create(params ...float64) (*Shape, error) {
	return r.base().create(KindRectangle, params)
}

func (r *RectangleFactory) base() factory {
	if r == nil {
		return factory{}
	}
	return r.f
}

// Validate reports whether s is a valid rectangle.
func (r *RectangleFactory) Validate(s *Shape) bool {
	return r.base().validate(KindRectangle, s)
}

// CircleFactory creates circles: Create(radius).
type CircleFactory struct{ f factory }

// NewCircleFactory returns a CircleFactory with the given options.
func NewCircleFactory(opts ...Option) *CircleFactory {
	return &CircleFactory{f: newFactory(opts)}
}

// Create builds a circle from (radius).
func (c *CircleFactory) Create(params ...float64) (*Shape, error) {
	return c.base().create(KindCircle, params)
}

func (c *CircleFactory) base() factory {
	if c == nil {
		return factory{}
	}
	return c.f
}

// Validate reports whether s is a valid circle.
func (c *CircleFactory) Validate(s *Shape) bool {
	return c.base().validate(KindCircle, s)
}

// TriangleFactory creates triangles: Create(sideA, sideB, sideC).
type TriangleFactory struct{ f factory }

// NewTriangleFactory returns a TriangleFactory with the given options.
func NewTriangleFactory(opts ...Option) *TriangleFactory {
	return &TriangleFactory{f: newFactory(opts)}
}

// Create builds a triangle from (sideA, sideB, sideC).
func (t *TriangleFactory) Create(params ...float64) (*Shape, error) {
	return t.base().create(KindTriangle, params)
}

func (t *TriangleFactory) base() factory {
	if t == nil {
		return factory{}
	}
	return t.f
}

// Validate reports whether s is a valid triangle.
func (t *TriangleFactory) Validate(s *Shape) bool {
	return t.base().validate(KindTriangle, s)
}
