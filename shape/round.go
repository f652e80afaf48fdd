// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// round.go — display rounding.

package shape

import "math"

// DisplayDecimals is the number of decimals used for display values.
const DisplayDecimals = 2

// exactAbove is the magnitude from which every float64 is an integer, so
// there is nothing left to round (and v*scale could overflow).
const exactAbove = 1 << 52

// Round2 rounds v half away from zero to DisplayDecimals places.
// Values of magnitude >= 2^52, NaN and ±Inf are returned unchanged.
// Use it for output only; computations should keep full precision.
func Round2(v float64) float64 {
	const scale = 100 // 10^DisplayDecimals
	if math.Abs(v) >= exactAbove || math.IsNaN(v) {
		return v
	}
	return math.Round(v*scale) / scale
}

// RoundAll applies Round2 to every element, returning a new slice.
func RoundAll(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = Round2(v)
	}

	return out
}
