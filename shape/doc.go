// Package shape defines the immutable geometric shape value used across
// geomlib, together with the per-kind formulas, validity predicates, and
// factories.
//
// 🚀 What is a Shape?
//
//	A *Shape is a small tagged union over three kinds:
//	  • rectangle — width, height
//	  • circle    — radius
//	  • triangle  — sideA, sideB, sideC
//	Every method dispatches on the kind tag; there are no per-instance
//	closures. A constructed *Shape always satisfies its validity predicate
//	and is never mutated afterwards.
//
// ✨ Key features:
//   - Closed-form formulas: area, perimeter, diagonal, diameter, Heron's area.
//   - Triangle classification: "equilateral", or "<isosceles|versatile> <acute|right|obtuse>"
//     with a tolerant right-angle check (DefaultRightAngleTolerance = 1e-5).
//   - Immutable edits: Edit validates, publishes "<kind>-edited" on the
//     ORIGINAL shape's notifier, and returns a brand-new *Shape.
//   - Factories (RectangleFactory, CircleFactory, TriangleFactory) satisfy
//     the registry's Factory contract: Create(params...) and Validate(shape).
//
// ⚙️ Usage:
//
//	r, err := shape.NewRectangle(10, 5)
//	if err != nil { ... }                       // errors.Is(err, shape.ErrInvalidParameters)
//	fmt.Println(r.Area(), r.Perimeter())         // 50 30
//	r2, _ := r.Edit(20, 10)                      // r is unchanged
//
// Errors:
//
//	ErrUnknownKind           - kind name is not one of the built-in kinds.
//	ErrInvalidParameters     - wrong arity, non-finite, non-positive, or impossible triangle.
//	ErrPropertyNotApplicable - kind-specific property requested on another kind.
//	ErrNilShape              - nil *Shape passed where a value is required.
//
// Numeric policy:
//
//	All methods return full precision. Rounding to two decimals for display
//	is done by callers through Round2 (the query package does this).
package shape
