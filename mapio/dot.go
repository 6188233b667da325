package mapio

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/linework/core"
)

// ToDOT converts m to an undirected Graphviz graph. Every vertex is pinned
// to its map position (points, 72 per inch) so neato keeps the geometry;
// selected elements are drawn in red.
func ToDOT(m *core.Map) string {
	selE := make(map[string]bool)
	for _, id := range m.SelectedEdges() {
		selE[id] = true
	}
	selV := make(map[string]bool)
	for _, id := range m.SelectedVertices() {
		selV[id] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=point, width=0.06];\n")
	buf.WriteString("\n")
	for _, v := range m.Vertices() {
		attrs := fmt.Sprintf("pos=\"%g,%g!\"", v.Pos.X, v.Pos.Y)
		if selV[v.ID] {
			attrs += ", color=red"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.ID, attrs)
	}
	buf.WriteString("\n")
	for _, e := range m.Edges() {
		if selE[e.ID] {
			fmt.Fprintf(&buf, "  %q -- %q [id=%q, color=red, penwidth=2];\n", e.Start, e.End, e.ID)
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [id=%q];\n", e.Start, e.End, e.ID)
	}
	buf.WriteString("}\n")

	return buf.String()
}

// RenderDOT lays out a DOT graph with neato and returns SVG bytes.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
