// Package component builds the selection view of a planar map and splits it
// into connected components.
//
// Two decompositions are provided:
//
//   - EdgeComponents(v)    used by marker placement; walks selected edges only.
//   - VertexComponents(v)  used by extrusion; walks vertices and may pick up
//     ambient edges between selected vertices when the selection is made of
//     vertices.
//
// Both return components in the order their seed first appears in the
// selection, and together they partition the selected vertex and edge sets:
// every element belongs to exactly one component. A host lookup failing
// mid-walk aborts the decomposition with the wrapped host error.
//
// Visited state is owned by a single call. The walk is an explicit stack, so
// a component the size of the whole map does not deepen the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) plus the host's incident-edge lookups.
//   - Memory: O(V + E) for the visited sets and the stack.
package component
