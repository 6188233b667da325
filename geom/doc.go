// Package geom provides the small amount of planar geometry the wireframe
// operations need: a Vec2 value type with the usual vector algebra, segment
// normals and side tests, degree/radian helpers, and the two-points-plus-
// subtended-angle circle construction used by arc extrusion.
//
// Conventions:
//
//   - Coordinates are float64 in a y-up frame.
//   - Angles passed across package boundaries are in degrees.
//   - Normal(a, b) is the unit vector of (b-a) rotated by -90°, i.e. the
//     right-hand side of a→b.
//
// Errors:
//
//   - ErrDegenerate: ArcCenter cannot build a circle (coincident points,
//     vanishing sweep, numerically impossible radius).
package geom
