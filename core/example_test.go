package core_test

import (
	"fmt"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

// ExampleMap demonstrates building a two-segment chain, splitting one
// segment and stitching loose geometry back onto it.
func ExampleMap() {
	m := core.NewMap()
	a, _ := m.AddVertex(geom.V(0, 0))
	b, _ := m.AddVertex(geom.V(64, 0))
	c, _ := m.AddVertex(geom.V(64, 64))
	ab, _ := m.AddEdge(a, b)
	_, _ = m.AddEdge(b, c)

	v, ne, _ := m.SplitEdge(ab, geom.V(32, 0))
	fmt.Println("split vertex:", v, "new edge:", ne)

	// A loose segment whose ends coincide with a and v.
	_, _ = m.DrawEdge(geom.V(0, 0), geom.V(32, 0))
	fmt.Println("before stitch:", m.VertexCount(), "vertices,", m.EdgeCount(), "edges")
	_ = m.Stitch()
	fmt.Println("after stitch:", m.VertexCount(), "vertices,", m.EdgeCount(), "edges")

	// Output:
	// split vertex: v4 new edge: e3
	// before stitch: 6 vertices, 4 edges
	// after stitch: 4 vertices, 3 edges
}
