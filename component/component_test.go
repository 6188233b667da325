package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

// fixture builds two disjoint chains plus an unselected spur:
//
//	a(0,0)-b(10,0)-c(20,0)   chain one, edges ab, bc
//	d(0,50)-e(10,50)         chain two, edge de
//	c-f(20,10)               spur, never selected
type fixture struct {
	m                *core.Map
	a, b, c, d, e, f string
	ab, bc, de, cf   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	m := core.NewMap()
	fx := fixture{m: m}
	fx.a = mustVertex(t, m, 0, 0)
	fx.b = mustVertex(t, m, 10, 0)
	fx.c = mustVertex(t, m, 20, 0)
	fx.d = mustVertex(t, m, 0, 50)
	fx.e = mustVertex(t, m, 10, 50)
	fx.f = mustVertex(t, m, 20, 10)
	fx.ab = mustEdge(t, m, fx.a, fx.b)
	fx.bc = mustEdge(t, m, fx.b, fx.c)
	fx.de = mustEdge(t, m, fx.d, fx.e)
	fx.cf = mustEdge(t, m, fx.c, fx.f)

	return fx
}

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

func TestNewEdgeView(t *testing.T) {
	fx := newFixture(t)
	v, err := component.NewEdgeView(fx.m, []string{fx.bc, fx.ab, fx.bc})
	require.NoError(t, err)

	assert.False(t, v.VertexMode())
	assert.Equal(t, []string{fx.bc, fx.ab}, v.Edges())
	assert.Equal(t, []string{fx.b, fx.c, fx.a}, v.Vertices())
	assert.Equal(t, 0, v.Index(fx.bc))
	assert.Equal(t, 1, v.Index(fx.ab))
	assert.Equal(t, -1, v.Index(fx.cf))
	assert.True(t, v.HasVertex(fx.a))
	assert.False(t, v.HasVertex(fx.f))

	l, err := v.Length(fx.ab)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, l, 1e-12)
}

func TestNewEdgeView_UnknownEdge(t *testing.T) {
	fx := newFixture(t)
	_, err := component.NewEdgeView(fx.m, []string{"e99"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestNewVertexView_VertexSelectionWins(t *testing.T) {
	fx := newFixture(t)
	v, err := component.NewVertexView(fx.m, []string{fx.a}, []string{fx.bc})
	require.NoError(t, err)
	assert.True(t, v.VertexMode())
	assert.Empty(t, v.Edges())
	assert.Equal(t, []string{fx.a}, v.Vertices())

	_, err = component.NewVertexView(fx.m, []string{"v99"}, nil)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdgeComponents_Partition(t *testing.T) {
	fx := newFixture(t)
	sel := []string{fx.de, fx.ab, fx.bc}
	v, err := component.NewEdgeView(fx.m, sel)
	require.NoError(t, err)

	comps, err := component.EdgeComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	assert.Equal(t, 0, comps[0].Index)
	assert.Equal(t, []string{fx.de}, comps[0].Edges)
	assert.Equal(t, []string{fx.d, fx.e}, comps[0].Vertices)

	assert.Equal(t, 1, comps[1].Index)
	assert.Equal(t, []string{fx.ab, fx.bc}, comps[1].Edges)
	assert.False(t, comps[1].HasEdge(fx.cf), "unselected spur must stay out")

	assertPartition(t, v, comps)
}

func TestEdgeComponents_PreorderStartThenEnd(t *testing.T) {
	// Star around b: ab, bc, bx selected, seeded from bc.
	fx := newFixture(t)
	x := mustVertex(t, fx.m, 10, -10)
	bx := mustEdge(t, fx.m, fx.b, x)

	v, err := component.NewEdgeView(fx.m, []string{fx.bc, bx, fx.ab})
	require.NoError(t, err)
	comps, err := component.EdgeComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	// bc is entered first; b's incident edges in host order are ab, bc, bx.
	assert.Equal(t, []string{fx.bc, fx.ab, bx}, comps[0].Edges)
}

func TestEdgeComponents_Cycle(t *testing.T) {
	m := core.NewMap()
	p := mustVertex(t, m, 0, 0)
	q := mustVertex(t, m, 10, 0)
	r := mustVertex(t, m, 0, 10)
	pq := mustEdge(t, m, p, q)
	qr := mustEdge(t, m, q, r)
	rp := mustEdge(t, m, r, p)

	v, err := component.NewEdgeView(m, []string{pq, qr, rp})
	require.NoError(t, err)
	comps, err := component.EdgeComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []string{pq, qr, rp}, comps[0].Edges)
	assertPartition(t, v, comps)
}

func TestVertexComponents_VertexMode(t *testing.T) {
	fx := newFixture(t)
	// a, b, c selected as vertices: ambient ab and bc join; d is isolated.
	v, err := component.NewVertexView(fx.m, []string{fx.a, fx.b, fx.c, fx.d}, nil)
	require.NoError(t, err)

	comps, err := component.VertexComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, []string{fx.a, fx.b, fx.c}, comps[0].Vertices)
	assert.Equal(t, []string{fx.ab, fx.bc}, comps[0].Edges)
	assert.True(t, comps[1].IsPoint())
	assert.Equal(t, []string{fx.d}, comps[1].Vertices)
}

func TestVertexComponents_EdgeMode(t *testing.T) {
	fx := newFixture(t)
	v, err := component.NewVertexView(fx.m, nil, []string{fx.ab, fx.de})
	require.NoError(t, err)

	comps, err := component.VertexComponents(v)
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, []string{fx.ab}, comps[0].Edges)
	assert.Equal(t, []string{fx.a, fx.b}, comps[0].Vertices)
	assert.Equal(t, []string{fx.de}, comps[1].Edges)
	assertPartition(t, v, comps)
}

// lossyReader forgets the incidence of one vertex, as a host mutated
// underneath a decomposition would.
type lossyReader struct {
	*core.Map
	lost string
}

func (r lossyReader) IncidentEdges(id string) ([]string, error) {
	if id == r.lost {
		return nil, core.ErrVertexNotFound
	}

	return r.Map.IncidentEdges(id)
}

func TestEdgeComponents_HostError(t *testing.T) {
	fx := newFixture(t)
	v, err := component.NewEdgeView(lossyReader{Map: fx.m, lost: fx.b}, []string{fx.ab, fx.bc})
	require.NoError(t, err)

	comps, err := component.EdgeComponents(v)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Contains(t, err.Error(), fx.b)
	assert.Nil(t, comps)
}

func TestVertexComponents_HostError(t *testing.T) {
	fx := newFixture(t)
	r := lossyReader{Map: fx.m, lost: fx.c}
	v, err := component.NewVertexView(r, []string{fx.a, fx.b, fx.c}, nil)
	require.NoError(t, err)

	comps, err := component.VertexComponents(v)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.Nil(t, comps)
}

func TestComponent_WithEdges(t *testing.T) {
	c := component.New(3, []string{"v1"}, nil)
	assert.True(t, c.IsPoint())
	w := c.WithEdges([]string{"e1", "e2", "e1"})
	assert.Equal(t, 3, w.Index)
	assert.Equal(t, []string{"e1", "e2"}, w.Edges)
	assert.True(t, w.HasEdge("e2"))
	assert.False(t, c.HasEdge("e2"))
}

// assertPartition checks that every selected edge and vertex of the view
// appears in exactly one component.
func assertPartition(t *testing.T, v *component.View, comps []component.Component) {
	t.Helper()
	seenE := map[string]int{}
	seenV := map[string]int{}
	for _, c := range comps {
		for _, e := range c.Edges {
			seenE[e]++
		}
		for _, id := range c.Vertices {
			seenV[id]++
		}
	}
	for _, e := range v.Edges() {
		assert.Equal(t, 1, seenE[e], "edge %s", e)
	}
	for _, id := range v.Vertices() {
		assert.Equal(t, 1, seenV[id], "vertex %s", id)
	}
	assert.Len(t, seenE, len(v.Edges()))
}
