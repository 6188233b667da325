// File: ids.go
// Role: Generated identifiers and creation-order helpers.
// Determinism:
//   - IDs are prefix + decimal counter ("v1", "e7", "t3"); no time or randomness.
//   - Generated IDs skip values already taken by explicitly named records.

package core

import (
	"sort"
	"strconv"
)

// makeID formats prefix+n without fmt allocations.
func makeID(prefix byte, n uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, prefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// newVertexID returns an unused vertex ID. Caller holds m.mu.
func (m *Map) newVertexID() string {
	for {
		m.nextVertexID++
		id := makeID(vertexIDPrefix, m.nextVertexID)
		if _, taken := m.vertices[id]; !taken {
			return id
		}
	}
}

// newEdgeID returns an unused edge ID. Caller holds m.mu.
func (m *Map) newEdgeID() string {
	for {
		m.nextEdgeID++
		id := makeID(edgeIDPrefix, m.nextEdgeID)
		if _, taken := m.edges[id]; !taken {
			return id
		}
	}
}

// newMarkerID returns the next marker ID. Caller holds m.mu.
func (m *Map) newMarkerID() string {
	m.nextMarkerID++

	return makeID(markerIDPrefix, m.nextMarkerID)
}

// nextSeq reserves the next creation sequence number. Caller holds m.mu.
func (m *Map) nextSeq() uint64 {
	m.seq++

	return m.seq
}

// sortEdgeIDs orders edge IDs by creation sequence. Caller holds m.mu (read).
func (m *Map) sortEdgeIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return m.edges[ids[i]].seq < m.edges[ids[j]].seq })
}

// sortVertexIDs orders vertex IDs by creation sequence. Caller holds m.mu (read).
func (m *Map) sortVertexIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool { return m.vertices[ids[i]].seq < m.vertices[ids[j]].seq })
}
