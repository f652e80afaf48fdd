// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// options.go — functional options shared by constructors and factories.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Options are carried by every shape and inherited by shapes produced
//     through Edit, so an edited shape behaves like its origin.

package shape

import (
	"math"

	"github.com/katalvlaran/geomlib/notify"
)

// DefaultRightAngleTolerance is the absolute tolerance applied when comparing
// r² against p²+q² in triangle classification.
const DefaultRightAngleTolerance = 1e-5

const (
	panicToleranceInvalid = "shape: WithRightAngleTolerance: tol must be finite, non-negative"
	panicNilNotifyOption  = "shape: WithNotifierOptions: nil notify.Option"
)

// Option customizes shape construction.
type Option func(*config)

// config is copied by value into every Shape.
type config struct {
	tolerance  float64
	notifyOpts []notify.Option
}

// newConfig resolves options over deterministic defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{tolerance: DefaultRightAngleTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRightAngleTolerance overrides the right-angle tolerance used by Subtype.
// Panics if tol is negative, NaN or Inf.
func WithRightAngleTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}
	return func(c *config) {
		c.tolerance = tol
	}
}

// WithNotifierOptions forwards options to every notifier attached to shapes
// built with this configuration (e.g. a fixed clock in tests).
// Panics on a nil element.
func WithNotifierOptions(opts ...notify.Option) Option {
	for _, o := range opts {
		if o == nil {
			panic(panicNilNotifyOption)
		}
	}
	return func(c *config) {
		c.notifyOpts = append(c.notifyOpts[:len(c.notifyOpts):len(c.notifyOpts)], opts...)
	}
}
