// SPDX-License-Identifier: MIT
// Package: geomlib/query
//
// compare.go — metric differences and sort helpers.
//
// The differences keep full precision. CompareAreas / ComparePerimeters map
// them to -1/0/+1 for the slices package; nil shapes count as 0.

package query

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/geomlib/shape"
)

// AreasDifference returns area(a) − area(b).
func AreasDifference(a, b *shape.Shape) float64 { return a.Area() - b.Area() }

// PerimetersDifference returns perimeter(a) − perimeter(b).
func PerimetersDifference(a, b *shape.Shape) float64 { return a.Perimeter() - b.Perimeter() }

// CompareAreas orders shapes by ascending area.
func CompareAreas(a, b *shape.Shape) int { return cmp.Compare(a.Area(), b.Area()) }

// ComparePerimeters orders shapes by ascending perimeter.
func ComparePerimeters(a, b *shape.Shape) int { return cmp.Compare(a.Perimeter(), b.Perimeter()) }

// SortByArea sorts shapes in place by ascending area; equal areas keep
// their relative order.
func SortByArea(shapes []*shape.Shape) { slices.SortStableFunc(shapes, CompareAreas) }

// SortByPerimeter sorts shapes in place by ascending perimeter; equal
// perimeters keep their relative order.
func SortByPerimeter(shapes []*shape.Shape) { slices.SortStableFunc(shapes, ComparePerimeters) }
