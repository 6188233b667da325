// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns records in creation order.
//
// Concurrency:
//   - Mutations under m.mu write lock; queries under read lock.

package core

import "github.com/katalvlaran/linework/geom"

// AddVertex creates a vertex at pos and returns its generated ID.
//
// Errors:
//   - ErrBadPosition: pos has a NaN or infinite coordinate.
//
// Complexity: O(1) amortized.
func (m *Map) AddVertex(pos geom.Vec2) (string, error) {
	if !pos.IsFinite() {
		return "", ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addVertexLocked(m.newVertexID(), pos), nil
}

// AddVertexID creates a vertex with an explicit ID. Used when importing map
// documents that already carry identifiers.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID, ErrBadPosition.
func (m *Map) AddVertexID(id string, pos geom.Vec2) error {
	if id == "" {
		return ErrEmptyID
	}
	if !pos.IsFinite() {
		return ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.vertices[id]; exists {
		return ErrDuplicateID
	}
	m.addVertexLocked(id, pos)

	return nil
}

// addVertexLocked registers a vertex record. Caller holds m.mu.
func (m *Map) addVertexLocked(id string, pos geom.Vec2) string {
	m.vertices[id] = &Vertex{ID: id, Pos: pos, seq: m.nextSeq()}
	m.incidence[id] = make(map[string]struct{})

	return id
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (m *Map) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record.
func (m *Map) Vertex(id string) (Vertex, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vertices[id]
	if !ok {
		return Vertex{}, ErrVertexNotFound
	}

	return *v, nil
}

// Position returns the vertex location.
//
// Errors:
//   - ErrVertexNotFound.
func (m *Map) Position(id string) (geom.Vec2, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vertices[id]
	if !ok {
		return geom.Vec2{}, ErrVertexNotFound
	}

	return v.Pos, nil
}

// SetPosition relocates a vertex. Incident edges follow implicitly.
//
// Errors:
//   - ErrVertexNotFound, ErrBadPosition.
func (m *Map) SetPosition(id string, pos geom.Vec2) error {
	if !pos.IsFinite() {
		return ErrBadPosition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	v.Pos = pos

	return nil
}

// RemoveVertex deletes a vertex together with every incident edge and drops
// them from the selection.
//
// Errors:
//   - ErrEmptyID, ErrVertexNotFound.
//
// Complexity: O(deg(v)).
func (m *Map) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	for eid := range m.incidence[id] {
		m.removeEdgeLocked(eid)
	}
	delete(m.incidence, id)
	delete(m.vertices, id)
	m.selVerts.remove(id)

	return nil
}

// Vertices returns copies of all vertices in creation order.
// Complexity: O(V log V).
func (m *Map) Vertices() []Vertex {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.vertices))
	for id := range m.vertices {
		ids = append(ids, id)
	}
	m.sortVertexIDs(ids)
	out := make([]Vertex, len(ids))
	for i, id := range ids {
		out[i] = *m.vertices[id]
	}

	return out
}

// VertexCount returns the number of vertices.
func (m *Map) VertexCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.vertices)
}
