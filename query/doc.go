// Package query is the read-side facade over *shape.Shape: display-rounded
// accessors, a human-readable summary, and comparators for sorting mixed
// collections.
//
// 🚀 What is it?
//
//	Every value returned here is rounded to two decimals (shape.Round2),
//	except the two difference comparators, which keep full precision so
//	that sorting never ties two shapes whose metrics differ below 0.005.
//
// ✨ Key features:
//   - Uniform accessors: Kind, Area, Perimeter.
//   - Kind-guarded accessors: Width, Height, Diagonal, Sides, Radius,
//     Diameter, Subtype. The wrong kind yields shape.ErrPropertyNotApplicable;
//     IsSquare is the exception and reports false.
//   - ShapeInfo (multi-line text) and Summary (struct, JSON/YAML tagged).
//   - AreasDifference / PerimetersDifference plus int-valued CompareAreas /
//     ComparePerimeters for slices.SortStableFunc, and SortByArea /
//     SortByPerimeter helpers.
//
// ⚙️ Usage:
//
//	info, err := query.ShapeInfo(r)
//	query.SortByArea(shapes) // ascending, stable
package query
