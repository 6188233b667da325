package distribute_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/distribute"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
	"github.com/katalvlaran/linework/walk"
)

// polyline adds a chain through pts and returns its edge IDs.
func polyline(t *testing.T, m *core.Map, pts ...geom.Vec2) []string {
	t.Helper()
	prev, err := m.AddVertex(pts[0])
	require.NoError(t, err)
	var edges []string
	for _, p := range pts[1:] {
		v, err := m.AddVertex(p)
		require.NoError(t, err)
		e, err := m.AddEdge(prev, v)
		require.NoError(t, err)
		edges = append(edges, e)
		prev = v
	}

	return edges
}

func markerXY(m *core.Map) []geom.Vec2 {
	var out []geom.Vec2
	for _, mk := range m.Markers() {
		out = append(out, mk.Pos)
	}

	return out
}

func assertPoints(t *testing.T, want, got []geom.Vec2) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "x[%d]", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "y[%d]", i)
	}
}

func TestPlan(t *testing.T) {
	d, err := distribute.Plan(300, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{50, 150, 250}, d)

	d, err = distribute.Plan(10, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, d)

	_, err = distribute.Plan(10, 0)
	assert.ErrorIs(t, err, mesh.ErrInvalidCount)
	_, err = distribute.Plan(0, 3)
	assert.ErrorIs(t, err, mesh.ErrDegenerateGeometry)
}

func TestDistribute_ThreeEdgeChain(t *testing.T) {
	m := core.NewMap()
	es := polyline(t, m, geom.V(0, 0), geom.V(100, 0), geom.V(200, 0), geom.V(300, 0))
	// Scrambled selection order; the walk still starts at the free end.
	require.NoError(t, m.SelectEdges(es[1], es[0], es[2]))

	res, err := distribute.Distribute(context.Background(), m, distribute.WithCount(3), distribute.WithKind(9001))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Components)
	assert.InDelta(t, 300.0, res.TotalLength, 1e-9)
	assert.Equal(t, "Distributed along 1 component(s).", res.Summary())
	require.Len(t, res.Markers, 3)
	assertPoints(t, []geom.Vec2{geom.V(50, 0), geom.V(150, 0), geom.V(250, 0)}, markerXY(m))
	for _, mk := range m.Markers() {
		assert.Equal(t, 9001, mk.Kind)
	}
	assert.Equal(t, []string{es[0], es[1], es[2]},
		[]string{res.Placements[0].Edge, res.Placements[1].Edge, res.Placements[2].Edge})
	assert.InDelta(t, 0.5, res.Placements[1].T, 1e-12)
}

func TestDistribute_PlanSpansComponents(t *testing.T) {
	m := core.NewMap()
	a := polyline(t, m, geom.V(0, 0), geom.V(100, 0))
	b := polyline(t, m, geom.V(0, 50), geom.V(100, 50))
	require.NoError(t, m.SelectEdges(a[0], b[0]))

	res, err := distribute.Distribute(context.Background(), m, distribute.WithCount(4))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Components)
	assertPoints(t, []geom.Vec2{
		geom.V(25, 0), geom.V(75, 0),
		geom.V(25, 50), geom.V(75, 50),
	}, markerXY(m))
	for _, mk := range m.Markers() {
		assert.Equal(t, distribute.DefaultKind, mk.Kind)
	}
}

func TestDistribute_Deterministic(t *testing.T) {
	build := func() *core.Map {
		m := core.NewMap()
		es := polyline(t, m, geom.V(0, 0), geom.V(30, 0), geom.V(30, 40), geom.V(0, 40))
		spur := polyline(t, m, geom.V(30, 0), geom.V(60, 0))
		require.NoError(t, m.SelectEdges(append(es, spur...)...))
		_ = m.Stitch()

		return m
	}
	m1, m2 := build(), build()
	_, err := distribute.Distribute(context.Background(), m1, distribute.WithCount(7))
	require.NoError(t, err)
	_, err = distribute.Distribute(context.Background(), m2, distribute.WithCount(7))
	require.NoError(t, err)
	assert.Equal(t, markerXY(m1), markerXY(m2))
	assert.Len(t, m1.Markers(), 7)
}

func TestDistribute_Errors(t *testing.T) {
	ctx := context.Background()

	m := core.NewMap()
	_, err := distribute.Distribute(ctx, m)
	assert.ErrorIs(t, err, mesh.ErrNoSelection)

	_, err = distribute.Distribute(ctx, m, distribute.WithCount(0))
	assert.ErrorIs(t, err, mesh.ErrInvalidCount)

	p, _ := m.AddVertex(geom.V(5, 5))
	q, _ := m.AddVertex(geom.V(5, 5))
	e, err := m.AddEdge(p, q)
	require.NoError(t, err)
	require.NoError(t, m.SelectEdges(e))
	_, err = distribute.Distribute(ctx, m)
	assert.ErrorIs(t, err, mesh.ErrDegenerateGeometry)
	assert.Empty(t, m.Markers())

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = distribute.Distribute(cctx, m)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlacer_FinishFlushesRoundingRemainder(t *testing.T) {
	pos := map[string]geom.Vec2{"a": geom.V(0, 0), "b": geom.V(10, 0)}
	lookup := func(id string) (geom.Vec2, error) { return pos[id], nil }

	pl := distribute.NewPlacer([]float64{4, 10 + 1e-12}, 10)
	got, err := pl.Feed(0, []walk.Step{{Edge: "e1", From: "a", To: "b", Length: 10}}, lookup)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.4, got[0].T, 1e-12)
	assert.Equal(t, 1, pl.Remaining())

	rest, err := pl.Finish()
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "e1", rest[0].Edge)
	assert.Equal(t, geom.V(10, 0), rest[0].Position)
	assert.Equal(t, 0, pl.Remaining())
}

func TestPlacer_FinishReportsShortfall(t *testing.T) {
	pos := map[string]geom.Vec2{"a": geom.V(0, 0), "b": geom.V(10, 0)}
	lookup := func(id string) (geom.Vec2, error) { return pos[id], nil }
	step := []walk.Step{{Edge: "e1", From: "a", To: "b", Length: 10}}

	// Plan built for 20 but only 10 walked: the second entry has no edge.
	pl := distribute.NewPlacer([]float64{5, 15}, 20)
	got, err := pl.Feed(0, step, lookup)
	require.NoError(t, err)
	require.Len(t, got, 1)
	_, err = pl.Finish()
	require.ErrorIs(t, err, mesh.ErrDegenerateGeometry)
	assert.Equal(t, 1, pl.Remaining())

	// Entries past the walked length fail even when the totals agree.
	pl = distribute.NewPlacer([]float64{5, 12}, 10)
	_, err = pl.Feed(0, step, lookup)
	require.NoError(t, err)
	_, err = pl.Finish()
	require.ErrorIs(t, err, mesh.ErrDegenerateGeometry)

	// Nothing fed at all.
	pl = distribute.NewPlacer([]float64{5}, 10)
	_, err = pl.Finish()
	require.ErrorIs(t, err, mesh.ErrDegenerateGeometry)
}

func TestDistribute_BridgeSelectedFirst(t *testing.T) {
	// Two 10x10 squares joined by a 90-long bridge; the bridge is selected
	// first so the walk starts mid-component. Total 170, plan 21.25, 63.75,
	// 106.25 and 148.75.
	m := core.NewMap()
	bridge := polyline(t, m, geom.V(0, 0), geom.V(90, 0))
	a, e, err := m.Endpoints(bridge[0])
	require.NoError(t, err)

	square := func(from string, pts ...geom.Vec2) []string {
		var out []string
		prev := from
		for _, p := range pts {
			v, err := m.AddVertex(p)
			require.NoError(t, err)
			id, err := m.AddEdge(prev, v)
			require.NoError(t, err)
			out = append(out, id)
			prev = v
		}
		id, err := m.AddEdge(prev, from)
		require.NoError(t, err)

		return append(out, id)
	}
	near := square(a, geom.V(0, 10), geom.V(-10, 10), geom.V(-10, 0))
	far := square(e, geom.V(100, 0), geom.V(100, 10), geom.V(90, 10))

	require.NoError(t, m.SelectEdges(slices.Concat(bridge, near, far)...))

	res, err := distribute.Distribute(context.Background(), m, distribute.WithCount(4))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Components)
	assert.InDelta(t, 170.0, res.TotalLength, 1e-9)
	assertPoints(t, []geom.Vec2{
		geom.V(21.25, 0), geom.V(63.75, 0), geom.V(100, 6.25), geom.V(-8.75, 10),
	}, markerXY(m))
	assert.Equal(t, near[1], res.Placements[3].Edge)
}
