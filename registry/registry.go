// SPDX-License-Identifier: MIT
// Package: geomlib/registry
//
// registry.go — kind → factory table and CreateShape.
//
// Concurrency:
//   - factories is guarded by mu. CreateShape resolves the factory under the
//     read lock and calls it outside the lock.

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/geomlib/shape"
)

// unknownKindLabel replaces caller-supplied kind names in metric labels
// when the kind is not registered, keeping label cardinality bounded.
const unknownKindLabel = "unknown"

//go:generate mockgen -source=registry.go -destination=mocks/mocks.go -package=mocks Factory

// Factory constructs and validates shapes of one kind.
//
// Create must not return a shape that fails Validate; the registry checks
// anyway and reports shape.ErrInvalidParameters if it does.
type Factory interface {
	Create(params ...float64) (*shape.Shape, error)
	Validate(s *shape.Shape) bool
}

// Registry is a concurrency-safe kind → Factory lookup table.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory

	logger    *zap.Logger
	metrics   *Metrics
	shapeOpts []shape.Option
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewWithBuiltins returns a Registry with the rectangle, circle and triangle
// factories registered under their kind names.
func NewWithBuiltins(opts ...Option) *Registry {
	r := New(opts...)
	r.MustRegister(string(shape.KindRectangle), shape.NewRectangleFactory(r.shapeOpts...))
	r.MustRegister(string(shape.KindCircle), shape.NewCircleFactory(r.shapeOpts...))
	r.MustRegister(string(shape.KindTriangle), shape.NewTriangleFactory(r.shapeOpts...))

	return r
}

// Register associates kind with f, replacing any previous factory.
//
// Errors:
//   - ErrInvalidRegistration: kind == "" or f == nil.
func (r *Registry) Register(kind string, f Factory) error {
	if kind == "" {
		return fmt.Errorf("Register: empty kind: %w", ErrInvalidRegistration)
	}
	if f == nil {
		return fmt.Errorf("Register(%q): nil factory: %w", kind, ErrInvalidRegistration)
	}

	r.mu.Lock()
	_, replaced := r.factories[kind]
	r.factories[kind] = f
	r.mu.Unlock()

	r.logger.Debug("factory registered",
		zap.String("kind", kind),
		zap.Bool("replaced", replaced))

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind string, f Factory) {
	if err := r.Register(kind, f); err != nil {
		panic(err)
	}
}

// Unregister removes kind and reports whether it was present.
func (r *Registry) Unregister(kind string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.factories[kind]
	delete(r.factories, kind)

	return ok
}

// Has reports whether kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.factories[kind]
	return ok
}

// Kinds returns the registered kind names, sorted ascending.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k)
	}
	r.mu.RUnlock()

	sort.Strings(out)
	return out
}

// CreateShape builds a shape of the named kind.
//
// Errors:
//   - shape.ErrUnknownKind:       no factory registered for kind.
//   - shape.ErrInvalidParameters: the factory failed, returned nil, or its
//     validator rejected the result. A factory error is kept in the chain.
func (r *Registry) CreateShape(kind string, params ...float64) (*shape.Shape, error) {
	r.mu.RLock()
	f, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		r.metrics.observeRejected(unknownKindLabel, ReasonUnknownKind)
		r.logger.Debug("unknown shape kind", zap.String("kind", kind))
		return nil, fmt.Errorf("CreateShape(%q): %w", kind, shape.ErrUnknownKind)
	}

	s, err := f.Create(params...)
	switch {
	case err != nil:
		if !errors.Is(err, shape.ErrInvalidParameters) {
			err = fmt.Errorf("%w: %w", shape.ErrInvalidParameters, err)
		}
		return nil, r.reject(kind, params, err)
	case s == nil || !f.Validate(s):
		return nil, r.reject(kind, params, shape.ErrInvalidParameters)
	}

	r.metrics.observeCreated(kind)
	return s, nil
}

// reject logs and counts a failed creation and wraps err with call context.
func (r *Registry) reject(kind string, params []float64, err error) error {
	r.metrics.observeRejected(kind, ReasonInvalidParameters)
	r.logger.Debug("shape rejected",
		zap.String("kind", kind),
		zap.Float64s("params", params),
		zap.Error(err))

	return fmt.Errorf("CreateShape(%q): %w", kind, err)
}
