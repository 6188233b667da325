// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_star.go - Star(n): a hub joined to n leaves.
//
// Contract:
//   • n ≥ 1 leaves (else ErrTooFewVertices).
//   • The hub is placed first at the anchor; leaves follow counter-clockwise
//     on the circle of radius scale, the first at angle 0.
//   • Edges hub→leaf in leaf order.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor for a hub with n spokes.
func Star(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minStarLeaves {
			return builderErrorf(methodStar, "n=%d < min=%d", ErrTooFewVertices, n, minStarLeaves)
		}
		pts := append([]geom.Vec2{geom.V(0, 0)}, circle(n, 0, 360/float64(n))...)
		ids, err := addPoints(m, cfg, methodStar, pts)
		if err != nil {
			return err
		}
		pairs := make([][2]int, n)
		for i := range pairs {
			pairs[i] = [2]int{0, i + 1}
		}

		return link(m, cfg, methodStar, ids, pairs)
	}
}
