// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_path.go - Path(n): an open polyline along +x.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Vertex i sits at (i·scale, 0) before rotation and origin.
//   • Edges i→i+1 in ascending i, so every edge starts where the previous ended.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for an n-vertex straight polyline.
func Path(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d", ErrTooFewVertices, n, minPathNodes)
		}
		pts := make([]geom.Vec2, n)
		for i := range pts {
			pts[i] = geom.V(float64(i), 0)
		}
		ids, err := addPoints(m, cfg, methodPath, pts)
		if err != nil {
			return err
		}

		return link(m, cfg, methodPath, ids, ring(0, n-1, false))
	}
}
