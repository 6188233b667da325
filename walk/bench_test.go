package walk_test

import (
	"testing"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/walk"
)

// BenchmarkWalk measures ordering a comb: a spine with a tooth at every vertex.
func BenchmarkWalk(b *testing.B) {
	const n = 2000
	m := core.NewMap()
	prev, _ := m.AddVertex(geom.V(0, 0))
	var edges []string
	for i := 1; i <= n; i++ {
		v, _ := m.AddVertex(geom.V(float64(i), 0))
		tip, _ := m.AddVertex(geom.V(float64(i), 1))
		e, _ := m.AddEdge(prev, v)
		t, _ := m.AddEdge(v, tip)
		edges = append(edges, e, t)
		prev = v
	}
	view, _ := component.NewEdgeView(m, edges)
	comps, err := component.EdgeComponents(view)
	if err != nil {
		b.Fatal(err)
	}
	c := comps[0]
	se, sv, _ := walk.Start(m, c)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(m, c, view.Index, se, sv)
	}
}
