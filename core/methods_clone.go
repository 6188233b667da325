// File: methods_clone.go
// Role: Deep copy of a Map.
// Determinism:
//   - IDs, creation order, counters and selection order are preserved, so a clone
//     generates the same future IDs as its source would.

package core

import "github.com/katalvlaran/linework/mesh"

// Map satisfies the operations' host contract.
var _ mesh.Host = (*Map)(nil)

// Clone returns a deep copy of the map: vertices, edges, incidence, markers,
// selection and ID counters.
// Complexity: O(V + E + M).
func (m *Map) Clone() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := &Map{
		allowLoops:   m.allowLoops,
		stitchEps:    m.stitchEps,
		seq:          m.seq,
		nextVertexID: m.nextVertexID,
		nextEdgeID:   m.nextEdgeID,
		nextMarkerID: m.nextMarkerID,
		vertices:     make(map[string]*Vertex, len(m.vertices)),
		edges:        make(map[string]*Edge, len(m.edges)),
		incidence:    make(map[string]map[string]struct{}, len(m.incidence)),
		markers:      make([]*Marker, len(m.markers)),
		selVerts:     m.selVerts.clone(),
		selEdges:     m.selEdges.clone(),
	}
	for id, v := range m.vertices {
		nv := *v
		c.vertices[id] = &nv
		inc := make(map[string]struct{}, len(m.incidence[id]))
		for eid := range m.incidence[id] {
			inc[eid] = struct{}{}
		}
		c.incidence[id] = inc
	}
	for id, e := range m.edges {
		ne := *e
		c.edges[id] = &ne
	}
	for i, mk := range m.markers {
		nm := *mk
		c.markers[i] = &nm
	}

	return c
}
