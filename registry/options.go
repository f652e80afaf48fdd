// SPDX-License-Identifier: MIT
// Package: geomlib/registry
//
// options.go — functional options for New.
//
// Defaults:
//   • logger  = zap.NewNop()   (silent)
//   • metrics = nil            (no counters)
//   • shapeOpts = none         (built-in factories use shape defaults)

package registry

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geomlib/shape"
)

// Option customizes a Registry.
type Option func(*Registry)

// WithLogger attaches a structured logger. Panics on nil; pass zap.NewNop()
// to silence explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(r *Registry) {
		r.logger = l.Named("registry")
	}
}

// WithMetrics records created/rejected counters into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("registry: WithMetrics(nil)")
	}
	return func(r *Registry) {
		r.metrics = m
	}
}

// WithShapeOptions forwards options to the built-in factories installed by
// NewWithBuiltins (e.g. a custom right-angle tolerance).
func WithShapeOptions(opts ...shape.Option) Option {
	return func(r *Registry) {
		r.shapeOpts = append(r.shapeOpts, opts...)
	}
}
