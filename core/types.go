// File: types.go
// Role: Vertex, Edge, Marker and Map declarations, MapOption, sentinel errors
//       and the NewMap constructor.
//
// Errors:
//
//	ErrEmptyID          - vertex or edge ID is the empty string.
//	ErrDuplicateID      - an explicit ID is already in use.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrLoopNotAllowed   - edge from a vertex to itself when loops are disabled.
//	ErrBadPosition      - coordinate is NaN or infinite.

package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/linework/geom"
)

// Sentinel errors for map store operations.
var (
	// ErrEmptyID indicates that a vertex or edge ID is empty.
	ErrEmptyID = errors.New("core: ID is empty")

	// ErrDuplicateID indicates that an explicit ID collides with an existing record.
	ErrDuplicateID = errors.New("core: ID already in use")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadPosition indicates a non-finite coordinate.
	ErrBadPosition = errors.New("core: position is not finite")
)

// DefaultStitchEpsilon is the distance under which Stitch treats two
// vertices as coincident.
const DefaultStitchEpsilon = 1e-6

// ID prefixes for generated identifiers ("v1", "e1", "t1", ...).
const (
	vertexIDPrefix = 'v'
	edgeIDPrefix   = 'e'
	markerIDPrefix = 't'
)

// Vertex is a point of the wireframe.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Map.
	ID string

	// Pos is the vertex location.
	Pos geom.Vec2

	seq uint64 // creation order
}

// Edge is a straight segment between two vertices. Start and End give the
// edge its direction; the map itself is undirected for incidence purposes.
type Edge struct {
	// ID uniquely identifies this Edge within its Map.
	ID string

	// Start is the ID of the first endpoint.
	Start string

	// End is the ID of the second endpoint.
	End string

	seq uint64 // creation order
}

// Marker is a point object placed on the map (a "thing").
type Marker struct {
	// ID uniquely identifies this Marker within its Map.
	ID string

	// Pos is the marker location.
	Pos geom.Vec2

	// Kind is the caller-defined marker type.
	Kind int
}

// MapOption configures a Map before creation.
type MapOption func(m *Map)

// WithLoops permits edges whose start and end are the same vertex.
func WithLoops() MapOption {
	return func(m *Map) { m.allowLoops = true }
}

// WithStitchEpsilon sets the coincidence tolerance used by Stitch.
// Non-positive values are ignored.
func WithStitchEpsilon(eps float64) MapOption {
	return func(m *Map) {
		if eps > 0 {
			m.stitchEps = eps
		}
	}
}

// Map is the in-memory store of vertices, edges, markers and selection.
//
// Ordering: every vertex and edge carries a creation sequence number;
// Vertices(), Edges() and IncidentEdges() enumerate in creation order, so
// traversals that depend on host order are reproducible.
type Map struct {
	mu sync.RWMutex

	allowLoops bool
	stitchEps  float64

	seq          uint64 // shared creation counter
	nextVertexID uint64
	nextEdgeID   uint64
	nextMarkerID uint64

	vertices map[string]*Vertex
	edges    map[string]*Edge
	markers  []*Marker

	// incidence[vertexID][edgeID] = struct{}{}
	incidence map[string]map[string]struct{}

	selVerts selection
	selEdges selection
}

// NewMap creates an empty Map. By default loops are rejected and the stitch
// tolerance is DefaultStitchEpsilon.
// Complexity: O(1)
func NewMap(opts ...MapOption) *Map {
	m := &Map{
		stitchEps: DefaultStitchEpsilon,
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		incidence: make(map[string]map[string]struct{}),
		selVerts:  newSelection(),
		selEdges:  newSelection(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MapStats is a snapshot of catalog sizes.
type MapStats struct {
	Vertices         int
	Edges            int
	Markers          int
	SelectedVertices int
	SelectedEdges    int
}

// Stats returns a consistent snapshot of catalog sizes.
// Complexity: O(1).
func (m *Map) Stats() MapStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return MapStats{
		Vertices:         len(m.vertices),
		Edges:            len(m.edges),
		Markers:          len(m.markers),
		SelectedVertices: m.selVerts.len(),
		SelectedEdges:    m.selEdges.len(),
	}
}
