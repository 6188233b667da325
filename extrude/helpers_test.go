package extrude_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

func mustVertex(t *testing.T, m *core.Map, x, y float64) string {
	t.Helper()
	id, err := m.AddVertex(geom.V(x, y))
	require.NoError(t, err)

	return id
}

func mustEdge(t *testing.T, m *core.Map, a, b string) string {
	t.Helper()
	id, err := m.AddEdge(a, b)
	require.NoError(t, err)

	return id
}

func pos(t *testing.T, m *core.Map, id string) geom.Vec2 {
	t.Helper()
	p, err := m.Position(id)
	require.NoError(t, err)

	return p
}

// positions returns every vertex location sorted by x then y.
func positions(m *core.Map) []geom.Vec2 {
	var out []geom.Vec2
	for _, v := range m.Vertices() {
		out = append(out, v.Pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}

		return out[i].Y < out[j].Y
	})

	return out
}

func assertNear(t *testing.T, want, got geom.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6, "x of %v", got)
	assert.InDelta(t, want.Y, got.Y, 1e-6, "y of %v", got)
}

// hasVertexAt reports whether some vertex of m lies within 1e-6 of p.
func hasVertexAt(m *core.Map, p geom.Vec2) bool {
	for _, v := range m.Vertices() {
		if v.Pos.Near(p, 1e-6) {
			return true
		}
	}

	return false
}
