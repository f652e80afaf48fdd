// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// circle.go — circle formulas and kind-guarded accessors.

package shape

import "math"

func circleArea(r float64) float64      { return math.Pi * r * r }
func circlePerimeter(r float64) float64 { return 2 * math.Pi * r }

// NewCircle builds a circle; radius must be finite and > 0.
func NewCircle(radius float64, opts ...Option) (*Shape, error) {
	return New(KindCircle, []float64{radius}, opts...)
}

// Radius returns the circle radius.
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Radius() (float64, error) {
	if err := s.require(KindCircle, "radius"); err != nil {
		return 0, err
	}
	return s.params[0], nil
}

// Diameter returns 2r.
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Diameter() (float64, error) {
	if err := s.require(KindCircle, "diameter"); err != nil {
		return 0, err
	}
	return 2 * s.params[0], nil
}
