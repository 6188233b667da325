package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linework/builder"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

var _ mesh.Host = (*core.Map)(nil)

func TestEdgeHelpers(t *testing.T) {
	m, err := builder.BuildMap(nil, []builder.BuilderOption{builder.WithScale(5), builder.WithRotation(90)}, builder.Path(2))
	require.NoError(t, err)

	l, err := mesh.EdgeLength(m, "e1")
	require.NoError(t, err)
	assert.InDelta(t, 5, l, 1e-12)

	a, b, err := mesh.EdgeSegment(m, "e1")
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, 0), a)
	assert.InDelta(t, 5, b.Y, 1e-12)

	u, err := mesh.OtherVertex(m, "e1", "v1")
	require.NoError(t, err)
	assert.Equal(t, "v2", u)
	u, err = mesh.OtherVertex(m, "e1", "v2")
	require.NoError(t, err)
	assert.Equal(t, "v1", u)
}

func TestEdgeHelpers_UnknownEdge(t *testing.T) {
	m := core.NewMap()

	_, err := mesh.EdgeLength(m, "nope")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = mesh.OtherVertex(m, "nope", "v1")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
