package extrude_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/extrude"
	"github.com/katalvlaran/linework/geom"
)

// ExampleExtrude pushes a two-edge wall 16 units along its normal.
func ExampleExtrude() {
	m := core.NewMap()
	a, _ := m.AddVertex(geom.V(0, 0))
	b, _ := m.AddVertex(geom.V(32, 0))
	c, _ := m.AddVertex(geom.V(64, 0))
	ab, _ := m.AddEdge(a, b)
	bc, _ := m.AddEdge(b, c)
	_ = m.SelectEdges(ab, bc)

	res, err := extrude.Extrude(context.Background(), m, extrude.WithDistance(16))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range m.Vertices() {
		fmt.Printf("%s (%g, %g)\n", v.ID, v.Pos.X, v.Pos.Y)
	}
	fmt.Println(res.Summary())

	// Output:
	// v1 (0, 0)
	// v2 (32, -16)
	// v3 (64, 0)
	// v4 (0, -16)
	// v5 (64, -16)
	// Extruded 1 section(s).
}
