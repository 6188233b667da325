// File: methods_selection.go
// Role: Ordered selection of vertices and edges.
// Determinism:
//   - SelectedVertices()/SelectedEdges() return IDs in the order they were selected.
//   - Re-selecting an already selected ID keeps its original position.
// Concurrency:
//   - All methods take m.mu.

package core

// selection is an insertion-ordered set of IDs.
type selection struct {
	order []string
	index map[string]struct{}
}

func newSelection() selection {
	return selection{index: make(map[string]struct{})}
}

func (s *selection) add(id string) {
	if _, ok := s.index[id]; ok {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *selection) remove(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, x := range s.order {
		if x == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *selection) has(id string) bool {
	_, ok := s.index[id]

	return ok
}

func (s *selection) len() int { return len(s.order) }

func (s *selection) list() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

func (s *selection) clone() selection {
	c := newSelection()
	for _, id := range s.order {
		c.add(id)
	}

	return c
}

// SelectedVertices returns the selected vertex IDs in selection order.
// Complexity: O(k).
func (m *Map) SelectedVertices() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.selVerts.list()
}

// SelectedEdges returns the selected edge IDs in selection order.
// Complexity: O(k).
func (m *Map) SelectedEdges() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.selEdges.list()
}

// SetVertexSelected adds the vertex to, or removes it from, the selection.
//
// Errors:
//   - ErrEmptyID, ErrVertexNotFound.
func (m *Map) SetVertexSelected(id string, selected bool) error {
	if id == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vertices[id]; !ok {
		return ErrVertexNotFound
	}
	if selected {
		m.selVerts.add(id)
	} else {
		m.selVerts.remove(id)
	}

	return nil
}

// SetEdgeSelected adds the edge to, or removes it from, the selection.
//
// Errors:
//   - ErrEmptyID, ErrEdgeNotFound.
func (m *Map) SetEdgeSelected(id string, selected bool) error {
	if id == "" {
		return ErrEmptyID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.edges[id]; !ok {
		return ErrEdgeNotFound
	}
	if selected {
		m.selEdges.add(id)
	} else {
		m.selEdges.remove(id)
	}

	return nil
}

// SelectEdges selects every listed edge in order. It stops at the first
// unknown ID.
func (m *Map) SelectEdges(ids ...string) error {
	for _, id := range ids {
		if err := m.SetEdgeSelected(id, true); err != nil {
			return err
		}
	}

	return nil
}

// SelectVertices selects every listed vertex in order. It stops at the first
// unknown ID.
func (m *Map) SelectVertices(ids ...string) error {
	for _, id := range ids {
		if err := m.SetVertexSelected(id, true); err != nil {
			return err
		}
	}

	return nil
}

// ClearSelection deselects everything.
func (m *Map) ClearSelection() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selVerts = newSelection()
	m.selEdges = newSelection()
}
