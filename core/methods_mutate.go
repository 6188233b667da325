// File: methods_mutate.go
// Role: Topology primitives used by the wireframe operations:
//       SplitEdge, DrawEdge, Stitch and CreateMarker.
// Determinism:
//   - Stitch merges later vertices into the earliest coincident one (creation order)
//     and keeps the earliest of any duplicate edges.
// Concurrency:
//   - Every primitive runs under the m.mu write lock as one atomic step.

package core

import (
	"math"

	"github.com/katalvlaran/linework/geom"
)

// SplitEdge inserts a new vertex at pos into the edge. The edge keeps its
// start and now ends at the new vertex; a new edge runs from the new vertex
// to the former end. The new edge is selected if the split edge was.
//
// pos does not have to lie on the segment.
//
// Errors:
//   - ErrEdgeNotFound, ErrBadPosition.
//
// Complexity: O(1) amortized.
func (m *Map) SplitEdge(id string, pos geom.Vec2) (string, string, error) {
	if !pos.IsFinite() {
		return "", "", ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.edges[id]
	if !ok {
		return "", "", ErrEdgeNotFound
	}

	vid := m.addVertexLocked(m.newVertexID(), pos)
	oldEnd := e.End
	delete(m.incidence[oldEnd], id)
	e.End = vid
	m.incidence[vid][id] = struct{}{}

	nid := m.addEdgeLocked(m.newEdgeID(), vid, oldEnd)
	if m.selEdges.has(id) {
		m.selEdges.add(nid)
	}

	return vid, nid, nil
}

// DrawEdge creates two new vertices at a and b joined by a new edge a→b.
// Nothing is merged until Stitch runs.
//
// Errors:
//   - ErrBadPosition.
func (m *Map) DrawEdge(a, b geom.Vec2) (string, error) {
	if !a.IsFinite() || !b.IsFinite() {
		return "", ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	va := m.addVertexLocked(m.newVertexID(), a)
	vb := m.addVertexLocked(m.newVertexID(), b)

	return m.addEdgeLocked(m.newEdgeID(), va, vb), nil
}

// CreateMarker places a marker of the given kind at pos.
//
// Errors:
//   - ErrBadPosition.
func (m *Map) CreateMarker(pos geom.Vec2, kind int) (string, error) {
	if !pos.IsFinite() {
		return "", ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.newMarkerID()
	m.markers = append(m.markers, &Marker{ID: id, Pos: pos, Kind: kind})

	return id, nil
}

// AddMarkerID places a marker with an explicit ID (document import).
func (m *Map) AddMarkerID(id string, pos geom.Vec2, kind int) error {
	if id == "" {
		return ErrEmptyID
	}
	if !pos.IsFinite() {
		return ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mk := range m.markers {
		if mk.ID == id {
			return ErrDuplicateID
		}
	}
	m.markers = append(m.markers, &Marker{ID: id, Pos: pos, Kind: kind})

	return nil
}

// Markers returns copies of all markers in creation order.
func (m *Map) Markers() []Marker {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Marker, len(m.markers))
	for i, mk := range m.markers {
		out[i] = *mk
	}

	return out
}

// cellKey buckets a position into a grid of stitch-epsilon cells.
type cellKey struct{ x, y int64 }

func cellOf(p geom.Vec2, eps float64) cellKey {
	return cellKey{x: int64(math.Floor(p.X / eps)), y: int64(math.Floor(p.Y / eps))}
}

// Stitch merges coincident geometry:
//
//  1. Vertices closer than the stitch tolerance (per axis) collapse into the
//     earliest-created one; edges are re-pointed and selection transferred.
//  2. Edges whose endpoints became the same vertex are removed.
//  3. Among edges joining the same vertex pair (either direction) only the
//     earliest-created one is kept.
//
// Complexity: O((V + E) log(V + E)) for ordering; neighbour lookups are O(1)
// per vertex through a spatial hash of tolerance-sized cells.
func (m *Map) Stitch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	eps := m.stitchEps
	ids := make([]string, 0, len(m.vertices))
	for id := range m.vertices {
		ids = append(ids, id)
	}
	m.sortVertexIDs(ids)

	// Stage 1: merge vertices into the earliest survivor in range.
	grid := make(map[cellKey][]string, len(ids))
	for _, id := range ids {
		v := m.vertices[id]
		c := cellOf(v.Pos, eps)
		target := ""
		for dx := int64(-1); dx <= 1 && target == ""; dx++ {
			for dy := int64(-1); dy <= 1 && target == ""; dy++ {
				for _, cand := range grid[cellKey{x: c.x + dx, y: c.y + dy}] {
					if m.vertices[cand].Pos.Near(v.Pos, eps) {
						target = cand
						break
					}
				}
			}
		}
		if target == "" {
			grid[c] = append(grid[c], id)
			continue
		}
		m.mergeVertexLocked(id, target)
	}

	// Stage 2 and 3: drop collapsed and duplicate edges.
	eids := make([]string, 0, len(m.edges))
	for eid := range m.edges {
		eids = append(eids, eid)
	}
	m.sortEdgeIDs(eids)
	type pair struct{ a, b string }
	seen := make(map[pair]struct{}, len(eids))
	for _, eid := range eids {
		e := m.edges[eid]
		if e.Start == e.End && !m.allowLoops {
			m.removeEdgeLocked(eid)
			continue
		}
		k := pair{a: e.Start, b: e.End}
		if k.b < k.a {
			k.a, k.b = k.b, k.a
		}
		if _, dup := seen[k]; dup {
			m.removeEdgeLocked(eid)
			continue
		}
		seen[k] = struct{}{}
	}

	return nil
}

// mergeVertexLocked re-points every edge of src to dst and deletes src.
// Caller holds m.mu.
func (m *Map) mergeVertexLocked(src, dst string) {
	for eid := range m.incidence[src] {
		e := m.edges[eid]
		if e.Start == src {
			e.Start = dst
		}
		if e.End == src {
			e.End = dst
		}
		m.incidence[dst][eid] = struct{}{}
	}
	if m.selVerts.has(src) {
		m.selVerts.add(dst)
		m.selVerts.remove(src)
	}
	delete(m.incidence, src)
	delete(m.vertices, src)
}
