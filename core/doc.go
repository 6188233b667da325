// Package core provides a thread-safe, in-memory planar map: vertices with
// 2D positions, straight directed edges between them, point markers, and an
// ordered selection. It is the reference implementation of mesh.Host.
//
// The store M = (V, E, T) supports:
//
//   - Deterministic enumeration: Vertices(), Edges() and IncidentEdges() all
//     follow creation order, so traversal tie-breaks are reproducible.
//   - Monotonic generated IDs ("v1", "e1", "t1", …) alongside explicit IDs for
//     document import (AddVertexID, AddEdgeID, AddMarkerID).
//   - Topology primitives consumed by the wireframe operations:
//     SplitEdge (insert a vertex, edge keeps its start), DrawEdge (two fresh
//     vertices plus an edge), Stitch (merge coincident vertices, collapse
//     degenerate and duplicate edges) and CreateMarker.
//   - Ordered selection of vertices and edges.
//   - Clone for dry runs (the CLI "inspect" command mutates a clone).
//
// Configuration Options (MapOption):
//
//	– WithLoops()
//	    Permits edges from a vertex to itself; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithStitchEpsilon(eps)
//	    Per-axis distance below which Stitch merges vertices (default 1e-6).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(pos) (id, error)            // O(1)
//	SetPosition(id, pos) error            // O(1)
//	RemoveVertex(id) error                // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(start, end) (id, error)       // O(1)
//	RemoveEdge(id) error                  // O(1)
//	IncidentEdges(id) ([]string, error)   // O(d log d)
//
//	// Topology primitives
//	SplitEdge(id, pos) (vertexID, edgeID, error)
//	DrawEdge(a, b) (edgeID, error)
//	Stitch() error
//
// Concurrency:
//
// A single sync.RWMutex protects all catalogs. Readers proceed in parallel;
// every primitive is applied atomically.
package core
