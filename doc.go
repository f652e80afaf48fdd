// Package geomlib is a small library of immutable geometric shapes:
// rectangles, circles and triangles, their factories, a kind registry, a
// read-side facade and per-shape change notifications.
//
// 🚀 What is geomlib?
//
//	A pure-Go toolkit that brings together:
//		• Shape values: one tagged type, closed-form formulas, no mutation
//		• Factories: Create + Validate per kind, never an invalid shape
//		• Registry: kind name → factory, with logging and Prometheus counters
//		• Facade: rounded accessors, ShapeInfo, comparators and sort helpers
//		• Notifications: "<kind>-edited" events with before/after values
//
// ✨ Why geomlib?
//
//   - Small surface – a handful of functions per package
//   - Predictable errors – sentinel errors, always matched with errors.Is
//   - Immutable – Edit returns a new shape and tells the old one's listeners
//   - Safe to share – registry and notifier guard their state with locks
//
// Under the hood, everything is organized in four subpackages:
//
//	shape/    — Shape, Kind, formulas, triangle classification, factories, Edit
//	notify/   — Notifier, ChangeEvent, ParamChange
//	registry/ — Registry, Default, Metrics; registry/mocks for tests
//	query/    — Area, Perimeter, guarded accessors, ShapeInfo, SortByArea…
//
// The sgm command (cmd/sgm) exposes the same operations on the command line.
//
// Quick example:
//
//	r, _ := registry.CreateShape("rectangle", 10, 5)
//	info, _ := query.ShapeInfo(r)
//	fmt.Print(info) // kind: rectangle, area: 50, perimeter: 30, …
//
//	go get github.com/katalvlaran/geomlib
package geomlib
