// SPDX-License-Identifier: MIT
//
// File: vec.go
// Role: 2D vector value type used for vertex positions, directions and centers.
// Determinism:
//   - All methods are pure value operations; no hidden state.

package geom

import "math"

// Epsilon is the absolute tolerance used by geometric degeneracy checks.
const Epsilon = 1e-9

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns p+q.
func (p Vec2) Add(q Vec2) Vec2 {
	return Vec2{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Vec2) Sub(q Vec2) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Vec2) Scale(s float64) Vec2 {
	return Vec2{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Vec2) Dot(q Vec2) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the scalar 2D cross product p×q.
func (p Vec2) Cross(q Vec2) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean norm of p.
func (p Vec2) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Vec2) Distance(q Vec2) float64 {
	return p.Sub(q).Length()
}

// Normalize returns the unit vector with the direction of p.
// The zero vector normalizes to itself.
func (p Vec2) Normalize() Vec2 {
	l := p.Length()
	if l == 0 {
		return Vec2{}
	}

	return Vec2{X: p.X / l, Y: p.Y / l}
}

// Reversed returns -p.
func (p Vec2) Reversed() Vec2 {
	return Vec2{X: -p.X, Y: -p.Y}
}

// Rotate returns p rotated counter-clockwise by rad radians around the origin.
func (p Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)

	return Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateDeg is Rotate with the angle given in degrees.
func (p Vec2) RotateDeg(deg float64) Vec2 {
	return p.Rotate(Deg2Rad(deg))
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Vec2) Lerp(q Vec2, t float64) Vec2 {
	return Vec2{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint returns the point halfway between p and q.
func (p Vec2) Midpoint(q Vec2) Vec2 {
	return p.Lerp(q, 0.5)
}

// Near reports whether p and q are within eps of each other on both axes.
func (p Vec2) Near(q Vec2, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Vec2) IsFinite() bool {
	return IsFinite(p.X) && IsFinite(p.Y)
}

// Normal returns the unit perpendicular of the segment a→b, i.e. the
// direction vector (b-a) rotated by -90°: (b.y-a.y, a.x-b.x) normalized.
// For a left-to-right segment in a y-up frame the normal points down
// (the segment's right-hand side).
func Normal(a, b Vec2) Vec2 {
	return Vec2{X: b.Y - a.Y, Y: a.X - b.X}.Normalize()
}

// SideOf returns the cross product (p-a)×(b-a). It is positive when p lies
// on the right-hand side of a→b (y-up), negative on the left, zero when
// collinear.
func SideOf(p, a, b Vec2) float64 {
	return (p.X-a.X)*(b.Y-a.Y) - (p.Y-a.Y)*(b.X-a.X)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
