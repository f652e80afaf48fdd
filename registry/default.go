// SPDX-License-Identifier: MIT
// Package: geomlib/registry
//
// default.go — the process-wide registry and package-level shortcuts.

package registry

import (
	"sync"

	"github.com/katalvlaran/geomlib/shape"
)

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry with the built-in factories,
// created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewWithBuiltins()
	})

	return defaultReg
}

// Register registers f for kind on the Default registry.
func Register(kind string, f Factory) error {
	return Default().Register(kind, f)
}

// CreateShape creates a shape through the Default registry.
func CreateShape(kind string, params ...float64) (*shape.Shape, error) {
	return Default().CreateShape(kind, params...)
}

// Kinds lists the kinds registered on the Default registry.
func Kinds() []string {
	return Default().Kinds()
}
