// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_grid.go - Grid(rows, cols): an orthogonal lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices).
//   • Vertices in row-major order at (c·scale, r·scale).
//   • For each (r,c) emit the right edge, then the upper edge, where present.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return builderErrorf(methodGrid, "rows=%d, cols=%d", ErrTooFewVertices, rows, cols)
		}
		pts := make([]geom.Vec2, 0, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				pts = append(pts, geom.V(float64(c), float64(r)))
			}
		}
		ids, err := addPoints(m, cfg, methodGrid, pts)
		if err != nil {
			return err
		}

		at := func(r, c int) int { return r*cols + c }
		var pairs [][2]int
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					pairs = append(pairs, [2]int{at(r, c), at(r, c+1)})
				}
				if r+1 < rows {
					pairs = append(pairs, [2]int{at(r, c), at(r+1, c)})
				}
			}
		}

		return link(m, cfg, methodGrid, ids, pairs)
	}
}
