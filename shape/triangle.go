// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// triangle.go — Heron's area, side accessors and subtype classification.
//
// Classification (ClassifyTriangle):
//  1. Equality class: all sides equal → "equilateral" (returned as-is: an
//     equilateral triangle is always acute); exactly two equal → "isosceles";
//     otherwise "versatile". Side equality is exact.
//  2. Angle class on sides sorted ascending [p,q,r]:
//     |r² − (p²+q²)| ≤ tol → "right"; r² < p²+q² → "acute"; else "obtuse".
//  3. Result: "<equality> <angle>", e.g. "isosceles right".

package shape

import (
	"math"
	"sort"
)

// Equality classes.
const (
	Equilateral = "equilateral"
	Isosceles   = "isosceles"
	Versatile   = "versatile"
)

// Angle classes.
const (
	Acute  = "acute"
	Right  = "right"
	Obtuse = "obtuse"
)

// heronArea computes Heron's formula in the cancellation-free ordering: with
// sides sorted so that a >= b >= c,
//
//	area = ¼·√((a+(b+c))·(c−(a−b))·(c+(a−b))·(a+(b−c)))
//
// This ordering keeps needle-like triangles accurate. Taking each root
// separately means the result overflows only when the area does. A
// non-positive c−(a−b) means an impossible triangle and yields 0.
func heronArea(a, b, c float64) float64 {
	if a < b {
		a, b = b, a
	}
	if b < c {
		b, c = c, b
	}
	if a < b {
		a, b = b, a
	}

	x1 := a + (b + c)
	x2 := c - (a - b)
	x3 := c + (a - b)
	x4 := a + (b - c)
	if x2 <= 0 {
		return 0
	}

	return math.Sqrt(x1) * math.Sqrt(x2) * math.Sqrt(x3) * math.Sqrt(x4) / 4
}

// NewTriangle builds a triangle; sides must be finite, > 0, and satisfy the
// strict triangle inequality.
func NewTriangle(a, b, c float64, opts ...Option) (*Shape, error) {
	return New(KindTriangle, []float64{a, b, c}, opts...)
}

// SideA returns the first side as given at construction.
func (s *Shape) SideA() (float64, error) { return s.side(0, "sideA") }

// SideB returns the second side as given at construction.
func (s *Shape) SideB() (float64, error) { return s.side(1, "sideB") }

// SideC returns the third side as given at construction.
func (s *Shape) SideC() (float64, error) { return s.side(2, "sideC") }

func (s *Shape) side(i int, property string) (float64, error) {
	if err := s.require(KindTriangle, property); err != nil {
		return 0, err
	}
	return s.params[i], nil
}

// Subtype classifies the triangle using the shape's right-angle tolerance
// (DefaultRightAngleTolerance unless WithRightAngleTolerance was given).
// Errors: ErrNilShape, ErrPropertyNotApplicable.
func (s *Shape) Subtype() (string, error) {
	if err := s.require(KindTriangle, "subtype"); err != nil {
		return "", err
	}
	return ClassifyTriangle(s.params[0], s.params[1], s.params[2], s.cfg.tolerance), nil
}

// ClassifyTriangle returns the subtype string for sides a, b, c.
// It does not validate the sides; callers pass a valid triangle.
// Complexity: O(1).
func ClassifyTriangle(a, b, c, tol float64) string {
	var equality string
	switch {
	case a == b && b == c:
		return Equilateral
	case a == b || a == c || b == c:
		equality = Isosceles
	default:
		equality = Versatile
	}

	return equality + " " + AngleClass(a, b, c, tol)
}

// AngleClass compares the square of the longest side against the sum of
// squares of the other two, within tol.
func AngleClass(a, b, c, tol float64) string {
	sides := []float64{a, b, c}
	sort.Float64s(sides)
	legs := sides[0]*sides[0] + sides[1]*sides[1]
	hyp := sides[2] * sides[2]

	switch {
	case math.Abs(hyp-legs) <= tol:
		return Right
	case hyp < legs:
		return Acute
	default:
		return Obtuse
	}
}
