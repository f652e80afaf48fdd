// Package registry maps shape-kind names to factories and is the central
// creation entry point of geomlib.
//
// 🚀 Flow:
//
//	CreateShape("rectangle", 10, 5)
//	  → lookup factory by kind          (ErrUnknownKind if absent)
//	  → factory.Create(params...)       (ErrInvalidParameters on failure)
//	  → factory.Validate(shape)         (ErrInvalidParameters if false)
//	  → *shape.Shape
//
// ✨ Key features:
//   - Register overwrites any previous factory for the same kind.
//   - Kinds() lists registered names (sorted; order is not a contract).
//   - Default() is a process-wide registry pre-populated with the built-in
//     rectangle, circle and triangle factories; the package-level Register,
//     CreateShape and Kinds functions operate on it.
//   - Optional structured logging (zap) and Prometheus counters via
//     WithLogger / WithMetrics.
//   - Safe for concurrent use.
//
// Errors are the shape package sentinels (shape.ErrUnknownKind,
// shape.ErrInvalidParameters) plus ErrInvalidRegistration.
package registry
