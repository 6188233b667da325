// SPDX-License-Identifier: MIT
//
// File: arc.go
// Role: Circle through two points subtending a given signed angle.

package geom

import (
	"errors"
	"math"
)

// ErrDegenerate indicates that a construction has no well-defined result
// (coincident points, vanishing angle, or a numerically impossible circle).
var ErrDegenerate = errors.New("geom: degenerate construction")

// Arc describes the circle reconstructed by ArcCenter.
type Arc struct {
	// Center of the circle.
	Center Vec2

	// Radius of the circle.
	Radius float64

	// Chord is the distance between the two input points.
	Chord float64

	// Offset is the distance from the chord midpoint to Center.
	Offset float64

	// Sweep is the normalized angle in degrees actually used, in (-180, 180].
	Sweep float64

	// Flip reports whether a distance measured against the chord's normal
	// must be negated to keep extrusions on the side the arc bulges to.
	Flip bool
}

// ArcCenter finds the center of the circle passing through a and b such that
// the arc from a to b subtends signedDeg degrees.
//
// Normalization:
//   - |signedDeg| mod 360; an exact 0 (including ±360) is treated as 180 so a
//     full turn yields the circle with a and b diametrically opposed.
//   - A non-negative input picks the circle behind the chord normal and sets
//     Flip; a negative input picks the one in front.
//   - Sweeps above 180° are folded into (-180, 0) and the normal is reversed,
//     because the chord then faces away from the arc.
//
// Geometry:
//
//	h = |b-a|, r = h / sqrt(2 - 2cos θ), d = sqrt(r² - h²/4)
//	center = midpoint(a,b) - d·n
//
// where n is Normal(a, b) after the sign adjustments above.
//
// Errors:
//   - ErrDegenerate if a and b coincide, the sweep is numerically zero, or
//     r² - h²/4 is negative beyond tolerance.
//
// Complexity: O(1).
func ArcCenter(a, b Vec2, signedDeg float64) (Arc, error) {
	h := a.Distance(b)
	if h < Epsilon || !IsFinite(signedDeg) {
		return Arc{}, ErrDegenerate
	}

	sweep := math.Mod(math.Abs(signedDeg), 360)
	if sweep == 0 {
		sweep = 180
	}

	n := Normal(a, b)
	flip := false
	if signedDeg < 0 {
		n = n.Reversed()
	} else {
		flip = true
	}
	if sweep > 180 {
		sweep -= 360
		n = n.Reversed()
	}

	denom := 2 - 2*math.Cos(Deg2Rad(sweep))
	if denom < Epsilon {
		return Arc{}, ErrDegenerate
	}
	r := h / math.Sqrt(denom)

	disc := r*r - h*h/4
	if disc < 0 {
		if disc < -Epsilon*math.Max(1, h*h) {
			return Arc{}, ErrDegenerate
		}
		disc = 0 // exact half circle
	}
	d := math.Sqrt(disc)

	return Arc{
		Center: a.Midpoint(b).Sub(n.Scale(d)),
		Radius: r,
		Chord:  h,
		Offset: d,
		Sweep:  sweep,
		Flip:   flip,
	}, nil
}
