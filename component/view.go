package component

import (
	"fmt"

	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

// View is a read-only projection of a host store restricted to a selection.
//
// In edge mode the selected edges define the view and the vertex set is
// every endpoint they touch. In vertex mode only vertices are selected;
// edges are discovered during decomposition from the ambient graph.
type View struct {
	r          mesh.Reader
	vertexMode bool

	verts   []string
	vertIdx map[string]int
	edges   []string
	edgeIdx map[string]int // SelectionIndex
}

// NewEdgeView builds an edge-mode view. The SelectionIndex of every edge is
// its position in edges; duplicates keep their first position. Vertices are
// recorded in first-touch order (start before end).
//
// Errors:
//   - wraps the host error when an edge cannot be resolved.
func NewEdgeView(r mesh.Reader, edges []string) (*View, error) {
	v := &View{
		r:       r,
		vertIdx: make(map[string]int),
		edgeIdx: make(map[string]int, len(edges)),
	}
	for _, eid := range edges {
		if _, dup := v.edgeIdx[eid]; dup {
			continue
		}
		s, e, err := r.Endpoints(eid)
		if err != nil {
			return nil, fmt.Errorf("component: edge %q: %w", eid, err)
		}
		v.edgeIdx[eid] = len(v.edges)
		v.edges = append(v.edges, eid)
		v.addVertex(s)
		v.addVertex(e)
	}

	return v, nil
}

// NewVertexView builds the view used by extrusion. A non-empty verts slice
// takes precedence and puts the view in vertex mode (edges is ignored);
// otherwise the view is an edge-mode view over edges.
//
// Errors:
//   - wraps the host error when a vertex or edge cannot be resolved.
func NewVertexView(r mesh.Reader, verts, edges []string) (*View, error) {
	if len(verts) == 0 {
		return NewEdgeView(r, edges)
	}
	v := &View{
		r:          r,
		vertexMode: true,
		vertIdx:    make(map[string]int, len(verts)),
		edgeIdx:    make(map[string]int),
	}
	for _, id := range verts {
		if _, err := r.Position(id); err != nil {
			return nil, fmt.Errorf("component: vertex %q: %w", id, err)
		}
		v.addVertex(id)
	}

	return v, nil
}

func (v *View) addVertex(id string) {
	if _, ok := v.vertIdx[id]; ok {
		return
	}
	v.vertIdx[id] = len(v.verts)
	v.verts = append(v.verts, id)
}

// Reader returns the underlying host reader.
func (v *View) Reader() mesh.Reader { return v.r }

// VertexMode reports whether the selection consisted of vertices.
func (v *View) VertexMode() bool { return v.vertexMode }

// Vertices returns the selected (or touched) vertices in order.
func (v *View) Vertices() []string {
	out := make([]string, len(v.verts))
	copy(out, v.verts)

	return out
}

// Edges returns the selected edges in SelectionIndex order.
func (v *View) Edges() []string {
	out := make([]string, len(v.edges))
	copy(out, v.edges)

	return out
}

// Empty reports whether the view selects nothing.
func (v *View) Empty() bool { return len(v.verts) == 0 && len(v.edges) == 0 }

// HasEdge reports whether the edge is selected.
func (v *View) HasEdge(id string) bool {
	_, ok := v.edgeIdx[id]

	return ok
}

// HasVertex reports whether the vertex is part of the view.
func (v *View) HasVertex(id string) bool {
	_, ok := v.vertIdx[id]

	return ok
}

// Index returns the SelectionIndex of a selected edge, or -1.
func (v *View) Index(id string) int {
	if i, ok := v.edgeIdx[id]; ok {
		return i
	}

	return -1
}

// Incident returns every ambient edge touching the vertex, in host order.
func (v *View) Incident(id string) ([]string, error) {
	return v.r.IncidentEdges(id)
}

// Endpoints returns an edge's start and end vertex.
func (v *View) Endpoints(id string) (string, string, error) {
	return v.r.Endpoints(id)
}

// Position returns a vertex location.
func (v *View) Position(id string) (geom.Vec2, error) {
	return v.r.Position(id)
}

// Length returns an edge's Euclidean length.
func (v *View) Length(id string) (float64, error) {
	return mesh.EdgeLength(v.r, id)
}
