// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_wheel.go - Wheel(n): a polygon rim plus a hub with spokes.
//
// Contract:
//   • n ≥ 3 rim vertices (else ErrTooFewVertices).
//   • Rim vertices are placed first, as in Polygon(n); the hub comes last.
//   • Rim edges first, then hub→rim spokes in rim order.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 3
)

// Wheel returns a Constructor for an n-spoke wheel.
func Wheel(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minWheelNodes {
			return builderErrorf(methodWheel, "n=%d < min=%d", ErrTooFewVertices, n, minWheelNodes)
		}
		pts := append(circle(n, 0, 360/float64(n)), geom.V(0, 0))
		ids, err := addPoints(m, cfg, methodWheel, pts)
		if err != nil {
			return err
		}
		pairs := ring(0, n-1, true)
		for i := 0; i < n; i++ {
			pairs = append(pairs, [2]int{n, i})
		}

		return link(m, cfg, methodWheel, ids, pairs)
	}
}
