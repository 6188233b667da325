// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeID/RemoveEdge/Edge/Edges/EdgeCount,
//       Endpoints and IncidentEdges.
// Determinism:
//   - Edges() and IncidentEdges() enumerate in creation order.
//   - Generated edge IDs are monotonic ("e" + decimal).
// Concurrency:
//   - Mutations under m.mu write lock; queries under read lock.

package core

// AddEdge creates an edge start→end and returns its generated ID.
//
// Steps:
//  1. Validate IDs and the loop constraint.
//  2. Verify both endpoints exist.
//  3. Register the edge and link it into both endpoints' incidence sets.
//
// Parallel edges are permitted; Stitch collapses them.
//
// Errors:
//   - ErrEmptyID, ErrLoopNotAllowed, ErrVertexNotFound.
//
// Complexity: O(1) amortized.
func (m *Map) AddEdge(start, end string) (string, error) {
	if err := m.checkEdgeArgs(start, end); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkEndpointsLocked(start, end); err != nil {
		return "", err
	}

	return m.addEdgeLocked(m.newEdgeID(), start, end), nil
}

// AddEdgeID creates an edge with an explicit ID.
//
// Errors:
//   - ErrEmptyID, ErrDuplicateID, ErrLoopNotAllowed, ErrVertexNotFound.
func (m *Map) AddEdgeID(id, start, end string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := m.checkEdgeArgs(start, end); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.edges[id]; exists {
		return ErrDuplicateID
	}
	if err := m.checkEndpointsLocked(start, end); err != nil {
		return err
	}
	m.addEdgeLocked(id, start, end)

	return nil
}

func (m *Map) checkEdgeArgs(start, end string) error {
	if start == "" || end == "" {
		return ErrEmptyID
	}
	if start == end && !m.allowLoops {
		return ErrLoopNotAllowed
	}

	return nil
}

// checkEndpointsLocked verifies both vertices exist. Caller holds m.mu.
func (m *Map) checkEndpointsLocked(start, end string) error {
	if _, ok := m.vertices[start]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := m.vertices[end]; !ok {
		return ErrVertexNotFound
	}

	return nil
}

// addEdgeLocked registers an edge record and its incidence. Caller holds m.mu.
func (m *Map) addEdgeLocked(id, start, end string) string {
	m.edges[id] = &Edge{ID: id, Start: start, End: end, seq: m.nextSeq()}
	m.incidence[start][id] = struct{}{}
	m.incidence[end][id] = struct{}{}

	return id
}

// removeEdgeLocked unlinks and deletes an edge. Caller holds m.mu.
func (m *Map) removeEdgeLocked(id string) {
	e, ok := m.edges[id]
	if !ok {
		return
	}
	delete(m.incidence[e.Start], id)
	delete(m.incidence[e.End], id)
	delete(m.edges, id)
	m.selEdges.remove(id)
}

// RemoveEdge deletes one edge and drops it from the selection.
// Its endpoints are kept.
//
// Errors:
//   - ErrEdgeNotFound.
func (m *Map) RemoveEdge(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.edges[id]; !ok {
		return ErrEdgeNotFound
	}
	m.removeEdgeLocked(id)

	return nil
}

// Edge returns a copy of the edge record.
func (m *Map) Edge(id string) (Edge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Endpoints returns the start and end vertex of an edge.
//
// Errors:
//   - ErrEdgeNotFound.
func (m *Map) Endpoints(id string) (string, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.edges[id]
	if !ok {
		return "", "", ErrEdgeNotFound
	}

	return e.Start, e.End, nil
}

// IncidentEdges returns the IDs of every edge touching the vertex, in
// creation order. A loop appears once.
//
// Errors:
//   - ErrVertexNotFound.
//
// Complexity: O(d log d).
func (m *Map) IncidentEdges(id string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	inc, ok := m.incidence[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(inc))
	for eid := range inc {
		out = append(out, eid)
	}
	m.sortEdgeIDs(out)

	return out, nil
}

// Edges returns copies of all edges in creation order.
// Complexity: O(E log E).
func (m *Map) Edges() []Edge {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.edges))
	for id := range m.edges {
		ids = append(ids, id)
	}
	m.sortEdgeIDs(ids)
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = *m.edges[id]
	}

	return out
}

// EdgeCount returns the number of edges.
func (m *Map) EdgeCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.edges)
}
