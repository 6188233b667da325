// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// impl_arc.go - Arc(segments, sweep): a polyline approximating a circular arc.
//
// Contract:
//   • segments ≥ 1 (else ErrTooFewVertices).
//   • sweep is finite and non-zero, in degrees (else ErrInvalidAngle).
//     Positive sweeps run counter-clockwise.
//   • segments+1 vertices on the circle of radius scale, from angle 0 to sweep.
//   • Edges i→i+1 in ascending i.

package builder

import (
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

const (
	methodArc      = "Arc"
	minArcSegments = 1
)

// Arc returns a Constructor for an arc polyline of the given segment count.
func Arc(segments int, sweep float64) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if segments < minArcSegments {
			return builderErrorf(methodArc, "segments=%d < min=%d", ErrTooFewVertices, segments, minArcSegments)
		}
		if !geom.IsFinite(sweep) || sweep == 0 {
			return builderErrorf(methodArc, "sweep=%g", ErrInvalidAngle, sweep)
		}
		ids, err := addPoints(m, cfg, methodArc, circle(segments+1, 0, sweep/float64(segments)))
		if err != nil {
			return err
		}

		return link(m, cfg, methodArc, ids, ring(0, segments, false))
	}
}
