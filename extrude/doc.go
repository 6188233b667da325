// Package extrude pushes selected parts of a planar map outward, either by
// moving them or by copying them and stitching the copy to the original.
//
// The selection (vertices, or edges when no vertex is selected) is split into
// sections with component.VertexComponents. Each section then goes through
// three stages:
//
//  1. Endpoints   two extremity vertices, from an ordered list of candidate
//     strategies, reduced to the farthest pair and oriented so the first one
//     starts a section edge.
//  2. Build       a Model: a linear direction, a radial center from a selected
//     origin vertex, or a radial center rebuilt from an arc angle.
//  3. Move / Copy hand the extruded positions to the host's split, draw and
//     stitch primitives.
//
// Every section's geometry is prepared before the first one is mutated, so
// an ambiguous or degenerate section aborts the call with the map untouched.
//
// Options:
//
//   - WithDistance(d)              signed distance (default 64).
//   - WithCopy(on)                 copy and stitch instead of move.
//   - WithAngle(deg)               rotate the direction or radial ray.
//   - WithArcAngle(deg)            signed arc angle for radial extrusion.
//   - WithRadialVertexSelect(on)   first isolated selected vertex is the origin.
//
// Errors:
//
//   - mesh.ErrNoSelection          nothing selected.
//   - mesh.ErrInvalidOption        non-finite numeric option.
//   - mesh.ErrAmbiguousDirection   a section has no usable endpoint pair.
//   - mesh.ErrDegenerateGeometry   coincident endpoints or an impossible arc.
package extrude
