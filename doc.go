// Package linework is a small editing engine for planar wireframes: vertices
// joined by straight edges, with a selection on top.
//
// 🚀 What does it do?
//
//	Two operations act on the current selection:
//		• Distribute: place N markers at evenly spaced arc-length positions
//		  along the selected edge chains, across every disconnected chain.
//		• Extrude: push each selected section along the normal of its
//		  endpoints (optionally rotated), around the arc through its
//		  endpoints, or toward a selected origin vertex; either moving the
//		  section or copying it and stitching the copy to the original.
//
// Under the hood, everything is organized in small packages:
//
//	geom/       - Vec2, rotation, the circle through two points for a given arc
//	core/       - Map: thread-safe vertex/edge/marker store with selection and Stitch
//	mesh/       - Reader, Selector, Mutator and Host interfaces + shared errors
//	component/  - selection views and connected-component decomposition
//	walk/       - depth-first edge ordering with running arc length
//	distribute/ - the marker placement operation
//	extrude/    - endpoint selection, extrusion models and topology updates
//	mapio/      - JSON map documents, SVG previews, Graphviz DOT export
//	builder/    - deterministic wireframe fixtures (paths, polygons, arcs, grids)
//
// Quick ASCII example:
//
//	a───b
//	    │
//	    c
//
// With ab and bc selected, Distribute with a count of 3 places markers 25
// units along ab, 75 units along ab and 25 units up bc.
//
// The linework command (cmd/linework) exposes both operations on JSON map
// documents:
//
//	go run ./cmd/linework distribute map.json -n 8 --svg preview.svg
package linework
