package mapio

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

// SVGOption configures WriteSVG.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	margin   float64
	vertices bool
	stroke   string
	selected string
	marker   string
}

// WithMargin sets the blank border around the drawing, in map units.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithVertices draws a dot on every vertex.
func WithVertices() SVGOption { return func(r *svgRenderer) { r.vertices = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{margin: 16, stroke: "#444444", selected: "#d6336c", marker: "#1c7ed6"}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// WriteSVG draws m as a standalone SVG document. Selected edges and
// vertices are highlighted; markers are drawn as small circles.
func WriteSVG(m *core.Map, w io.Writer, opts ...SVGOption) error {
	r := newSVGRenderer(opts...)
	vs := m.Vertices()
	mks := m.Markers()

	minP, maxP := bounds(vs, mks)
	minP = minP.Sub(geom.V(r.margin, r.margin))
	maxP = maxP.Add(geom.V(r.margin, r.margin))
	width, height := maxP.X-minP.X, maxP.Y-minP.Y
	// Map y grows upward; SVG y grows downward.
	flip := func(p geom.Vec2) geom.Vec2 { return geom.V(p.X-minP.X, maxP.Y-p.Y) }

	pos := make(map[string]geom.Vec2, len(vs))
	for _, v := range vs {
		pos[v.ID] = flip(v.Pos)
	}
	selE := make(map[string]bool)
	for _, id := range m.SelectedEdges() {
		selE[id] = true
	}
	selV := make(map[string]bool)
	for _, id := range m.SelectedVertices() {
		selV[id] = true
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	buf.WriteString(`  <g fill="none" stroke-linecap="round">` + "\n")
	for _, e := range m.Edges() {
		a, b := pos[e.Start], pos[e.End]
		color, sw := r.stroke, 1.5
		if selE[e.ID] {
			color, sw = r.selected, 2.5
		}
		fmt.Fprintf(&buf, `    <line id="%s" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
			e.ID, a.X, a.Y, b.X, b.Y, color, sw)
	}
	buf.WriteString("  </g>\n")

	for _, v := range vs {
		if !r.vertices && !selV[v.ID] {
			continue
		}
		p := pos[v.ID]
		color := r.stroke
		if selV[v.ID] {
			color = r.selected
		}
		fmt.Fprintf(&buf, `  <rect id="%s" x="%.2f" y="%.2f" width="4" height="4" fill="%s"/>`+"\n",
			v.ID, p.X-2, p.Y-2, color)
	}
	for _, mk := range mks {
		p := flip(mk.Pos)
		fmt.Fprintf(&buf, `  <circle id="%s" cx="%.2f" cy="%.2f" r="3" fill="%s" data-kind="%d"/>`+"\n",
			mk.ID, p.X, p.Y, r.marker, mk.Kind)
	}
	buf.WriteString("</svg>\n")

	_, err := w.Write(buf.Bytes())

	return err
}

// bounds returns the bounding box of the vertices and markers; an empty map
// has the zero box.
func bounds(vs []core.Vertex, mks []core.Marker) (geom.Vec2, geom.Vec2) {
	if len(vs) == 0 && len(mks) == 0 {
		return geom.Vec2{}, geom.Vec2{}
	}
	minP := geom.V(math.Inf(1), math.Inf(1))
	maxP := geom.V(math.Inf(-1), math.Inf(-1))
	grow := func(p geom.Vec2) {
		minP = geom.V(math.Min(minP.X, p.X), math.Min(minP.Y, p.Y))
		maxP = geom.V(math.Max(maxP.X, p.X), math.Max(maxP.Y, p.Y))
	}
	for _, v := range vs {
		grow(v.Pos)
	}
	for _, mk := range mks {
		grow(mk.Pos)
	}

	return minP, maxP
}
