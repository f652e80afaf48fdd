// SPDX-License-Identifier: MIT
// Package shape_test contains fixtures shared by the shape tests.

package shape_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/geomlib/notify"
	"github.com/katalvlaran/geomlib/shape"
)

// Tolerance for comparisons against closed-form values (avoid magic numbers).
const Eps = 1e-9

// Canonical fixtures taken from the demo scenarios.
const (
	RectW, RectH = 10.0, 5.0
	CircleR      = 7.0
	TriA         = 40.0
	TriB         = 50.0
	TriC         = 80.99
)

// FixedTime is stamped on every event built through testOptions.
var FixedTime = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// testOptions makes notifiers deterministic: fixed clock, sequential IDs.
func testOptions() []shape.Option {
	var n byte
	ids := func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}

	return []shape.Option{shape.WithNotifierOptions(
		notify.WithClock(func() time.Time { return FixedTime }),
		notify.WithIDSource(ids),
	)}
}

// mustRect, mustCircle and mustTriangle panic on error; they are used only
// for inputs known to be valid.
func mustRect(w, h float64, opts ...shape.Option) *shape.Shape {
	s, err := shape.NewRectangle(w, h, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func mustCircle(r float64, opts ...shape.Option) *shape.Shape {
	s, err := shape.NewCircle(r, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func mustTriangle(a, b, c float64, opts ...shape.Option) *shape.Shape {
	s, err := shape.NewTriangle(a, b, c, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
