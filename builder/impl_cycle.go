// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_cycle.go - Polygon(n): a closed regular polygon.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertices lie counter-clockwise on the circle of radius scale around the
//     anchor, the first at angle 0.
//   • Edges i→(i+1)%n in ascending i.

package builder

import (
	"github.com/katalvlaran/linework/core"
)

const (
	methodPolygon   = "Polygon"
	minPolygonNodes = 3
)

// Polygon returns a Constructor for a regular n-gon.
func Polygon(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if n < minPolygonNodes {
			return builderErrorf(methodPolygon, "n=%d < min=%d", ErrTooFewVertices, n, minPolygonNodes)
		}
		ids, err := addPoints(m, cfg, methodPolygon, circle(n, 0, 360/float64(n)))
		if err != nil {
			return err
		}

		return link(m, cfg, methodPolygon, ids, ring(0, n-1, true))
	}
}
