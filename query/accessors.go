// SPDX-License-Identifier: MIT
// Package: geomlib/query
//
// accessors.go — rounded, kind-guarded property access.

package query

import "github.com/katalvlaran/geomlib/shape"

// Kind returns the kind name of s, or "" for nil.
func Kind(s *shape.Shape) string {
	return string(s.Kind())
}

// Area returns the area of s rounded to two decimals.
func Area(s *shape.Shape) float64 { return shape.Round2(s.Area()) }

// Perimeter returns the perimeter of s rounded to two decimals.
func Perimeter(s *shape.Shape) float64 { return shape.Round2(s.Perimeter()) }

// Width returns the rounded rectangle width.
func Width(s *shape.Shape) (float64, error) { return rounded(s.Width()) }

// Height returns the rounded rectangle height.
func Height(s *shape.Shape) (float64, error) { return rounded(s.Height()) }

// Diagonal returns the rounded rectangle diagonal.
func Diagonal(s *shape.Shape) (float64, error) { return rounded(s.Diagonal()) }

// Radius returns the rounded circle radius.
func Radius(s *shape.Shape) (float64, error) { return rounded(s.Radius()) }

// Diameter returns the rounded circle diameter.
func Diameter(s *shape.Shape) (float64, error) { return rounded(s.Diameter()) }

// IsSquare reports whether s is a rectangle with equal sides. Any other
// shape, including nil, reports false.
func IsSquare(s *shape.Shape) bool { return s.IsSquare() }

// Sides returns the rounded sides of a rectangle ([w,h,w,h]) or a triangle
// ([a,b,c] in construction order).
// Errors: shape.ErrNilShape, shape.ErrPropertyNotApplicable (circle).
func Sides(s *shape.Shape) ([]float64, error) {
	sides, err := s.Sides()
	if err != nil {
		return nil, err
	}

	return shape.RoundAll(sides), nil
}

// Subtype returns the triangle classification, e.g. "isosceles right".
// Errors: shape.ErrNilShape, shape.ErrPropertyNotApplicable.
func Subtype(s *shape.Shape) (string, error) { return s.Subtype() }

func rounded(v float64, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	return shape.Round2(v), nil
}
