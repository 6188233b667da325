// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// helpers.go - shared placement plumbing for constructors.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

// addPoints places every local point and returns the new vertex IDs in order.
func addPoints(m *core.Map, cfg builderConfig, method string, pts []geom.Vec2) ([]string, error) {
	ids := make([]string, len(pts))
	for i, p := range pts {
		id, err := m.AddVertex(cfg.place(p))
		if err != nil {
			return nil, builderErrorf(method, "AddVertex(#%d)", err, i)
		}
		ids[i] = id
	}

	return ids, nil
}

// link adds one edge per index pair, in order, and applies the configured
// selection to the created vertices and edges.
func link(m *core.Map, cfg builderConfig, method string, ids []string, pairs [][2]int) error {
	edges := make([]string, 0, len(pairs))
	for _, p := range pairs {
		id, err := m.AddEdge(ids[p[0]], ids[p[1]])
		if err != nil {
			return builderErrorf(method, "AddEdge(%s→%s)", err, ids[p[0]], ids[p[1]])
		}
		edges = append(edges, id)
	}

	switch cfg.selection {
	case SelectEdges:
		if len(edges) > 0 {
			return m.SelectEdges(edges...)
		}
	case SelectVertices:
		return m.SelectVertices(ids...)
	}

	return nil
}

// ring returns the index pairs i→i+1 for i in [from, to), closing to→from
// when closed is set.
func ring(from, to int, closed bool) [][2]int {
	pairs := make([][2]int, 0, to-from+1)
	for i := from; i < to; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}
	if closed {
		pairs = append(pairs, [2]int{to, from})
	}

	return pairs
}

// circle returns n points on the unit circle starting at angle startDeg and
// advancing by stepDeg.
func circle(n int, startDeg, stepDeg float64) []geom.Vec2 {
	pts := make([]geom.Vec2, n)
	for i := range pts {
		pts[i] = geom.V(1, 0).RotateDeg(startDeg + float64(i)*stepDeg)
	}

	return pts
}
