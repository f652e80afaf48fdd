// SPDX-License-Identifier: MIT
// Package: geomlib/registry
//
// errors.go — registry-specific sentinel. Creation errors reuse the shape
// package sentinels so callers match one set of errors across packages.

package registry

import "errors"

// ErrInvalidRegistration indicates Register was called with an empty kind
// name or a nil factory.
var ErrInvalidRegistration = errors.New("registry: invalid registration")
