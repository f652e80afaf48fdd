// SPDX-License-Identifier: MIT
// Package: geomlib/shape
//
// validate.go — the validity predicate, one fixed sequence per kind:
// kind → arity → finiteness → positivity → (triangle) strict inequality →
// finite area and perimeter.
// Creation and Edit share it, so both reject exactly the same inputs.

package shape

import "math"

// validateParams returns nil when params define a valid shape of kind k,
// or a wrapped ErrUnknownKind / ErrInvalidParameters otherwise.
// Complexity: O(arity).
func validateParams(k Kind, params []float64) error {
	names, ok := paramNames[k]
	if !ok {
		return unknownKind(k)
	}
	if len(params) != len(names) {
		return invalidf("%s expects %d parameters, got %d", k, len(names), len(params))
	}
	for i, v := range params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return invalidf("%s must be finite (got %v)", names[i], v)
		}
		if v <= 0 {
			return invalidf("%s must be > 0 (got %v)", names[i], v)
		}
	}
	if k == KindTriangle {
		a, b, c := params[0], params[1], params[2]
		if !(a+b > c && a+c > b && b+c > a) {
			return invalidf("sides %v, %v, %v violate the triangle inequality", a, b, c)
		}
	}
	// Every other derived value (diagonal, diameter) is bounded by these two.
	if a := area(k, params); math.IsInf(a, 0) {
		return invalidf("%s area overflows float64", k)
	}
	if p := perimeter(k, params); math.IsInf(p, 0) {
		return invalidf("%s perimeter overflows float64", k)
	}

	return nil
}

// Valid reports whether params define a valid shape of kind k.
func Valid(k Kind, params ...float64) bool {
	return validateParams(k, params) == nil
}

// Validate re-checks a constructed shape against its kind's predicate.
// Returns ErrNilShape for nil.
func Validate(s *Shape) error {
	if s == nil {
		return ErrNilShape
	}

	return validateParams(s.kind, s.params)
}
