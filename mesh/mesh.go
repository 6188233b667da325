// Package mesh declares the boundary between the wireframe operations and the
// map store that owns vertices, edges, selection and markers.
//
// The operations never store, render or persist anything themselves: they read
// through Reader, query the selection through Selector, and hand every
// topology change to Mutator. core.Map is the in-memory implementation used by
// the command-line front end and the tests; any other store that satisfies
// Host can be driven the same way.
//
// Identity:
//
//   - Vertices and edges are referenced by non-empty string IDs issued by the
//     store. IDs are stable for the duration of one operation.
//   - IncidentEdges must return a deterministic order; traversal tie-breaks
//     depend on it.
//
// Errors:
//
//   - ErrNoSelection         nothing usable is selected.
//   - ErrInvalidCount        requested marker count is below 1.
//   - ErrAmbiguousDirection  extrusion endpoints could not be resolved to a pair.
//   - ErrDegenerateGeometry  zero arc length or an impossible radial construction.
package mesh

import (
	"errors"

	"github.com/katalvlaran/linework/geom"
)

// Sentinel errors shared by the wireframe operations. All of them abort the
// current invocation.
var (
	// ErrNoSelection indicates that no edges (placement) or no vertices/edges
	// (extrusion) are selected.
	ErrNoSelection = errors.New("mesh: nothing selected")

	// ErrInvalidCount indicates a requested marker count below 1.
	ErrInvalidCount = errors.New("mesh: marker count must be at least 1")

	// ErrAmbiguousDirection indicates that exactly two extrusion endpoints
	// could not be determined for a component.
	ErrAmbiguousDirection = errors.New("mesh: cannot determine extrusion direction")

	// ErrDegenerateGeometry indicates zero total arc length or a numerically
	// degenerate construction.
	ErrDegenerateGeometry = errors.New("mesh: degenerate geometry")

	// ErrInvalidOption indicates a non-finite numeric option.
	ErrInvalidOption = errors.New("mesh: invalid option value")
)

// Reader is the read-only view of the store.
type Reader interface {
	// Position returns the location of a vertex.
	Position(vertexID string) (geom.Vec2, error)

	// Endpoints returns the start and end vertex of an edge.
	Endpoints(edgeID string) (start, end string, err error)

	// IncidentEdges returns every edge touching the vertex, selected or not,
	// in a deterministic order.
	IncidentEdges(vertexID string) ([]string, error)
}

// Selector exposes the store's selection state.
type Selector interface {
	// SelectedVertices returns selected vertex IDs in selection order.
	SelectedVertices() []string

	// SelectedEdges returns selected edge IDs in selection order.
	SelectedEdges() []string

	// SetVertexSelected adds or removes a vertex from the selection.
	SetVertexSelected(vertexID string, selected bool) error
}

// Mutator is the set of primitives the operations use to change topology.
type Mutator interface {
	// SetPosition relocates a vertex.
	SetPosition(vertexID string, pos geom.Vec2) error

	// SplitEdge inserts a new vertex at pos. The split edge keeps its start
	// and ends at the new vertex; the returned edge runs from the new vertex
	// to the former end.
	SplitEdge(edgeID string, pos geom.Vec2) (vertexID, newEdgeID string, err error)

	// DrawEdge creates an edge between two new vertices at a and b.
	DrawEdge(a, b geom.Vec2) (edgeID string, err error)

	// Stitch merges coincident vertices and the edges that become duplicates.
	Stitch() error

	// CreateMarker places a point marker of the given kind.
	CreateMarker(pos geom.Vec2, kind int) (markerID string, err error)
}

// Host is a complete store: readable, selectable and mutable.
type Host interface {
	Reader
	Selector
	Mutator
}

// EdgeLength returns the Euclidean length of an edge.
func EdgeLength(r Reader, edgeID string) (float64, error) {
	a, b, err := EdgeSegment(r, edgeID)
	if err != nil {
		return 0, err
	}

	return a.Distance(b), nil
}

// EdgeSegment returns the positions of an edge's start and end vertex.
func EdgeSegment(r Reader, edgeID string) (geom.Vec2, geom.Vec2, error) {
	s, e, err := r.Endpoints(edgeID)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	a, err := r.Position(s)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}
	b, err := r.Position(e)
	if err != nil {
		return geom.Vec2{}, geom.Vec2{}, err
	}

	return a, b, nil
}

// OtherVertex returns the endpoint of edgeID opposite to vertexID.
// If vertexID is not the start, the start is returned.
func OtherVertex(r Reader, edgeID, vertexID string) (string, error) {
	s, e, err := r.Endpoints(edgeID)
	if err != nil {
		return "", err
	}
	if s == vertexID {
		return e, nil
	}

	return s, nil
}
