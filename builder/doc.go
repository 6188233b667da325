// Package builder assembles deterministic wireframe fixtures on a core.Map.
//
// Each Constructor places one shape (a path, a regular polygon, an arc
// polyline, a grid lattice, a star, a wheel or a lone point) and optionally
// selects what it created, so the result can be fed straight to
// distribute.Distribute or extrude.Extrude. BuildMap composes constructors in
// order on a fresh map:
//
//	m, err := builder.BuildMap(nil,
//		[]builder.BuilderOption{builder.WithScale(100), builder.WithSelection(builder.SelectEdges)},
//		builder.Path(4),
//	)
//
// Options:
//
//   - WithOrigin:    translate every placed point.
//   - WithScale:     edge length of paths and grids, radius of round shapes.
//   - WithRotation:  rotate shapes (degrees) about their own anchor.
//   - WithJitter:    perturb positions by up to the given amount; needs WithSeed.
//   - WithSelection: select nothing, the created edges or the created vertices.
//
// Guarantees:
//
//   - Determinism: identical options and constructor order yield identical
//     maps, including generated IDs.
//   - Option constructors panic on meaningless values; constructors never
//     panic and return the sentinels in errors.go wrapped with context.
package builder
