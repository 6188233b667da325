// Package distribute places a fixed number of point markers at evenly spaced
// arc-length positions along the selected edges of a map.
//
// The selected edges are split into connected components (component
// package). Their lengths are summed into one total L and a single plan of
// target distances is built:
//
//	d_i = (i + 0.5) * L / N,  i in [0, N)
//
// The plan is consumed globally: components are walked in selection order
// and the running distance carries over from one component to the next, so
// markers are spread over the concatenation of all components rather than
// N per component. Inside a component the walk starts at a path extremity
// when one exists and follows branches in selection order (walk package).
//
// Every marker position is computed before the first marker is created.
//
// Options:
//
//   - WithKind(k)   marker kind handed to the host (default 2014).
//   - WithCount(n)  number of markers, n >= 1 (default 8).
//
// Errors:
//
//   - mesh.ErrInvalidCount        count below 1.
//   - mesh.ErrNoSelection         no edges selected.
//   - mesh.ErrDegenerateGeometry  selected edges have zero total length.
//   - context errors when ctx is done between components.
package distribute
