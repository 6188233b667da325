package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/builder"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

func near(t *testing.T, m *core.Map, id string, want geom.Vec2) {
	t.Helper()
	got, err := m.Position(id)
	require.NoError(t, err)
	assert.InDelta(t, want.X, got.X, 1e-9, "x of %s", id)
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y of %s", id)
}

func TestPath(t *testing.T) {
	m, err := builder.BuildMap(nil,
		[]builder.BuilderOption{builder.WithScale(10), builder.WithSelection(builder.SelectEdges)},
		builder.Path(4))
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, []string{"e1", "e2", "e3"}, m.SelectedEdges())
	near(t, m, "v1", geom.V(0, 0))
	near(t, m, "v4", geom.V(30, 0))
	s, e, err := m.Endpoints("e2")
	require.NoError(t, err)
	assert.Equal(t, "v2", s)
	assert.Equal(t, "v3", e)
}

func TestShapes_Counts(t *testing.T) {
	tests := []struct {
		name         string
		con          builder.Constructor
		verts, edges int
	}{
		{"polygon", builder.Polygon(5), 5, 5},
		{"arc", builder.Arc(3, 90), 4, 3},
		{"grid", builder.Grid(2, 3), 6, 7},
		{"row", builder.Grid(1, 4), 4, 3},
		{"star", builder.Star(3), 4, 3},
		{"wheel", builder.Wheel(5), 6, 10},
		{"point", builder.Point(), 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMap(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.verts, m.VertexCount())
			assert.Equal(t, tc.edges, m.EdgeCount())
			assert.Empty(t, m.SelectedEdges())
			assert.Empty(t, m.SelectedVertices())
		})
	}
}

func TestPolygonAndArc_Geometry(t *testing.T) {
	m, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithScale(2)}, builder.Polygon(4))
	require.NoError(t, err)
	near(t, m, "v1", geom.V(2, 0))
	near(t, m, "v2", geom.V(0, 2))
	near(t, m, "v3", geom.V(-2, 0))

	m, err = builder.BuildMap(nil,
		[]builder.BuilderOption{builder.WithScale(10), builder.WithOrigin(geom.V(5, 5))},
		builder.Arc(2, -90))
	require.NoError(t, err)
	near(t, m, "v1", geom.V(15, 5))
	near(t, m, "v3", geom.V(5, -5))
}

func TestRotation(t *testing.T) {
	m, err := builder.BuildMap(nil,
		[]builder.BuilderOption{builder.WithScale(10), builder.WithRotation(90)},
		builder.Path(2))
	require.NoError(t, err)
	near(t, m, "v2", geom.V(0, 10))
}

func TestComposition_SelectsAdditively(t *testing.T) {
	m := core.NewMap()
	require.NoError(t, builder.Apply(m,
		[]builder.BuilderOption{builder.WithOrigin(geom.V(0, 100)), builder.WithSelection(builder.SelectVertices)},
		builder.Point()))
	require.NoError(t, builder.Apply(m,
		[]builder.BuilderOption{builder.WithScale(50), builder.WithSelection(builder.SelectVertices)},
		builder.Path(3)))

	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, m.SelectedVertices())
	near(t, m, "v1", geom.V(0, 100))
	near(t, m, "v4", geom.V(100, 0))
}

func TestJitter(t *testing.T) {
	build := func() *core.Map {
		m, err := builder.BuildMap(nil,
			[]builder.BuilderOption{builder.WithScale(10), builder.WithJitter(0.5), builder.WithSeed(7)},
			builder.Grid(3, 3))
		require.NoError(t, err)
		return m
	}
	a, b := build(), build()
	assert.Equal(t, a.Vertices(), b.Vertices())

	for _, v := range a.Vertices() {
		assert.LessOrEqual(t, math.Abs(v.Pos.X-10*math.Round(v.Pos.X/10)), 0.5)
		assert.LessOrEqual(t, math.Abs(v.Pos.Y-10*math.Round(v.Pos.Y/10)), 0.5)
	}

	_, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithJitter(1)}, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"path", builder.Path(1), builder.ErrTooFewVertices},
		{"polygon", builder.Polygon(2), builder.ErrTooFewVertices},
		{"arc segments", builder.Arc(0, 90), builder.ErrTooFewVertices},
		{"arc sweep", builder.Arc(2, 0), builder.ErrInvalidAngle},
		{"grid", builder.Grid(1, 1), builder.ErrTooFewVertices},
		{"star", builder.Star(0), builder.ErrTooFewVertices},
		{"wheel", builder.Wheel(2), builder.ErrTooFewVertices},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMap(nil, nil, tc.con)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.NotPanics(t, func() { builder.WithRotation(-45) })
}
