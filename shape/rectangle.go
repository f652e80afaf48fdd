// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// rectangle.go — rectangle formulas and kind-guarded accessors.
//
//	area      = w·h
//	perimeter = 2(w+h)
//	diagonal  = √(w²+h²)
//	isSquare  = w == h
//	sides     = [w, h, w, h]

package shape

import "math"

func rectangleArea(w, h float64) float64      { return w * h }
func rectanglePerimeter(w, h float64) float64 { return 2 * (w + h) }

// NewRectangle builds a rectangle; both sides must be finite and > 0.
func NewRectangle(width, height float64, opts ...Option) (*Shape, error) {
	return New(KindRectangle, []float64{width, height}, opts...)
}

// Width returns the rectangle width.
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Width() (float64, error) {
	if err := s.require(KindRectangle, "width"); err != nil {
		return 0, err
	}
	return s.params[0], nil
}

// Height returns the rectangle height.
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Height() (float64, error) {
	if err := s.require(KindRectangle, "height"); err != nil {
		return 0, err
	}
	return s.params[1], nil
}

// Diagonal returns √(w²+h²). math.Hypot avoids intermediate overflow.
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Diagonal() (float64, error) {
	if err := s.require(KindRectangle, "diagonal"); err != nil {
		return 0, err
	}
	return math.Hypot(s.params[0], s.params[1]), nil
}

// IsSquare reports w == h. Non-rectangles (and nil) report false instead
// of failing.
func (s *Shape) IsSquare() bool {
	if s == nil || s.kind != KindRectangle {
		return false
	}
	return s.params[0] == s.params[1]
}

// Sides returns [w,h,w,h] for rectangles and [a,b,c] (original order) for
// triangles.
// Errors: ErrNilShape, ErrPropertyNotApplicable (circle).
func (s *Shape) Sides() ([]float64, error) {
	if s == nil {
		return nil, ErrNilShape
	}
	switch s.kind {
	case KindRectangle:
		w, h := s.params[0], s.params[1]
		return []float64{w, h, w, h}, nil
	case KindTriangle:
		return s.Params(), nil
	}

	return nil, notApplicable("sides", s.kind)
}

// require is the kind guard shared by every kind-specific accessor.
func (s *Shape) require(k Kind, property string) error {
	if s == nil {
		return ErrNilShape
	}
	if s.kind != k {
		return notApplicable(property, s.kind)
	}
	return nil
}
