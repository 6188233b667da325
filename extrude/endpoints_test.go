package extrude_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/extrude"
	"github.com/katalvlaran/linework/mesh"
)

// section decomposes an edge selection that must form one component.
func section(t *testing.T, m *core.Map, edges ...string) component.Component {
	t.Helper()
	v, err := component.NewVertexView(m, nil, edges)
	require.NoError(t, err)
	comps, err := component.VertexComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 1)

	return comps[0]
}

// startsSectionEdge reports whether v is the start of an incident section edge.
func startsSectionEdge(t *testing.T, m *core.Map, c component.Component, v string) bool {
	t.Helper()
	inc, err := m.IncidentEdges(v)
	require.NoError(t, err)
	for _, e := range inc {
		if !c.HasEdge(e) {
			continue
		}
		s, _, err := m.Endpoints(e)
		require.NoError(t, err)
		if s == v {
			return true
		}
	}

	return false
}

func TestEndpoints_PathEnds(t *testing.T) {
	tests := []struct {
		name     string
		reversed bool
	}{
		{"forward", false},
		{"reversed", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := core.NewMap()
			a := mustVertex(t, m, 0, 0)
			b := mustVertex(t, m, 10, 0)
			c := mustVertex(t, m, 20, 0)
			var e1, e2 string
			if tc.reversed {
				e1, e2 = mustEdge(t, m, b, a), mustEdge(t, m, c, b)
			} else {
				e1, e2 = mustEdge(t, m, a, b), mustEdge(t, m, b, c)
			}
			sec := section(t, m, e1, e2)

			p, err := extrude.Endpoints(m, &sec)
			require.NoError(t, err)
			assert.False(t, p.Synthesized)
			if tc.reversed {
				assert.Equal(t, extrude.Pair{A: c, B: a}, p)
			} else {
				assert.Equal(t, extrude.Pair{A: a, B: c}, p)
			}
			assert.True(t, startsSectionEdge(t, m, sec, p.A))
		})
	}
}

func TestEndpoints_FarthestLeaves(t *testing.T) {
	m := core.NewMap()
	o := mustVertex(t, m, 0, 0)
	l1 := mustVertex(t, m, 10, 0)
	l2 := mustVertex(t, m, 0, 10)
	l3 := mustVertex(t, m, -20, 0)
	sec := section(t, m, mustEdge(t, m, o, l1), mustEdge(t, m, o, l2), mustEdge(t, m, o, l3))

	p, err := extrude.Endpoints(m, &sec)
	require.NoError(t, err)
	// l1-l3 is the widest pair; l1 starts no edge so the pair is swapped.
	assert.Equal(t, extrude.Pair{A: l3, B: l1}, p)
}

func TestEndpoints_BoundaryVertices(t *testing.T) {
	m := core.NewMap()
	a := mustVertex(t, m, 0, 0)
	b := mustVertex(t, m, 10, 0)
	c := mustVertex(t, m, 10, 10)
	d := mustVertex(t, m, 0, 10)
	sel := []string{mustEdge(t, m, a, b), mustEdge(t, m, b, c), mustEdge(t, m, c, d), mustEdge(t, m, d, a)}
	// Unselected spurs make a and c boundary vertices.
	mustEdge(t, m, a, mustVertex(t, m, -5, -5))
	mustEdge(t, m, c, mustVertex(t, m, 15, 15))
	sec := section(t, m, sel...)

	p, err := extrude.Endpoints(m, &sec)
	require.NoError(t, err)
	assert.Equal(t, extrude.Pair{A: a, B: c}, p)
}

func TestEndpoints_AllVerticesOnCycle(t *testing.T) {
	m := core.NewMap()
	p0 := mustVertex(t, m, 0, 0)
	q := mustVertex(t, m, 30, 0)
	r := mustVertex(t, m, 0, 40)
	sec := section(t, m, mustEdge(t, m, p0, q), mustEdge(t, m, q, r), mustEdge(t, m, r, p0))

	p, err := extrude.Endpoints(m, &sec)
	require.NoError(t, err)
	assert.Equal(t, extrude.Pair{A: q, B: r}, p)
}

func TestEndpoints_SingleVertex(t *testing.T) {
	m := core.NewMap()
	u := mustVertex(t, m, -10, 0)
	v := mustVertex(t, m, 0, 5)
	w := mustVertex(t, m, 10, 0)
	uv := mustEdge(t, m, u, v)
	vw := mustEdge(t, m, v, w)

	sec := component.New(0, []string{v}, nil)
	p, err := extrude.Endpoints(m, &sec)
	require.NoError(t, err)
	assert.Equal(t, extrude.Pair{A: u, B: w, Synthesized: true}, p)
	assert.Equal(t, []string{uv, vw}, sec.Edges, "edge set widened to the ambient edges")
}

func TestEndpoints_SingleVertexOneNeighbour(t *testing.T) {
	m := core.NewMap()
	u := mustVertex(t, m, 0, 0)
	v := mustVertex(t, m, 10, 0)
	mustEdge(t, m, u, v)

	sec := component.New(0, []string{v}, nil)
	p, err := extrude.Endpoints(m, &sec)
	require.NoError(t, err)
	assert.Equal(t, extrude.Pair{A: u, B: v, Synthesized: true}, p)
}

func TestEndpoints_Ambiguous(t *testing.T) {
	m := core.NewMap()
	v := mustVertex(t, m, 0, 0)
	sec := component.New(4, []string{v}, nil)
	_, err := extrude.Endpoints(m, &sec)
	assert.ErrorIs(t, err, mesh.ErrAmbiguousDirection)

	// Every candidate coincides: no pair has a positive separation.
	m = core.NewMap()
	a := mustVertex(t, m, 1, 1)
	b := mustVertex(t, m, 1, 1)
	c := mustVertex(t, m, 1, 1)
	sec = section(t, m, mustEdge(t, m, a, b), mustEdge(t, m, b, c), mustEdge(t, m, c, a))
	_, err = extrude.Endpoints(m, &sec)
	assert.ErrorIs(t, err, mesh.ErrAmbiguousDirection)
}

func TestSelectEndpoints_CustomStrategies(t *testing.T) {
	m := core.NewMap()
	a := mustVertex(t, m, 0, 0)
	b := mustVertex(t, m, 10, 0)
	c := mustVertex(t, m, 30, 0)
	sec := section(t, m, mustEdge(t, m, a, b), mustEdge(t, m, b, c))

	// Skipping path ends leaves only the all-vertices fallback.
	p, err := extrude.SelectEndpoints(m, &sec, []extrude.Strategy{extrude.AllVertices})
	require.NoError(t, err)
	assert.Equal(t, extrude.Pair{A: a, B: c}, p)

	_, err = extrude.SelectEndpoints(m, &sec, nil)
	assert.ErrorIs(t, err, mesh.ErrAmbiguousDirection)
}
