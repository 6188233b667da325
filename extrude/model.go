// SPDX-License-Identifier: MIT
// Package: linework/extrude
//
// model.go - the per-section transform from original to extruded position.
//
// Modes, by precedence:
//   • ModeRadialOrigin  a selected origin vertex is the center.
//   • ModeRadialArc     the center is rebuilt from the endpoints and ArcAngle.
//   • ModeLinear        one direction for every vertex.

package extrude

import (
	"fmt"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

// Mode identifies how a Model maps positions.
type Mode int

const (
	// ModeLinear offsets every vertex by Distance along Direction.
	ModeLinear Mode = iota

	// ModeRadialOrigin moves vertices along rays to an explicit center.
	ModeRadialOrigin

	// ModeRadialArc moves vertices along rays to a center derived from the
	// arc angle.
	ModeRadialArc
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeRadialOrigin:
		return "radial-origin"
	case ModeRadialArc:
		return "radial-arc"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Model is the extrusion transform of one section.
type Model struct {
	Mode Mode

	// Direction is the unit offset direction in linear mode (the endpoint
	// normal rotated by Angle). In radial modes it is the endpoint normal,
	// after the arc side adjustments in arc mode.
	Direction geom.Vec2

	// Distance is the signed distance after side corrections.
	Distance float64

	// Center of the radial modes.
	Center geom.Vec2

	// Facing is the sign of the edges' summed cross products against Center:
	// +1 when Center lies mostly on the side the edge normals point to. It
	// is reported for inspection only; Apply measures the radial ray from
	// Center, so the result does not depend on edge winding. Always +1
	// outside ModeRadialOrigin.
	Facing float64

	// Angle rotates the radial ray, in degrees. Zero outside radial modes.
	Angle float64

	// Arc is the reconstructed circle in ModeRadialArc.
	Arc geom.Arc
}

// Build computes the Model of section c with endpoints p. origin, when
// non-nil, selects ModeRadialOrigin.
//
// Errors:
//   - mesh.ErrDegenerateGeometry (also matching geom.ErrDegenerate) when the
//     endpoints coincide outside ModeRadialOrigin or the arc cannot be built.
func Build(r mesh.Reader, c component.Component, p Pair, opts Options, origin *geom.Vec2) (*Model, error) {
	a, err := r.Position(p.A)
	if err != nil {
		return nil, fmt.Errorf("extrude: vertex %q: %w", p.A, err)
	}
	b, err := r.Position(p.B)
	if err != nil {
		return nil, fmt.Errorf("extrude: vertex %q: %w", p.B, err)
	}
	normal := geom.Normal(a, b)

	if origin != nil {
		var side float64
		for _, e := range c.Edges {
			s, t, err := mesh.EdgeSegment(r, e)
			if err != nil {
				return nil, fmt.Errorf("extrude: edge %q: %w", e, err)
			}
			side += geom.SideOf(*origin, s, t)
		}
		facing := 1.0
		if side < 0 {
			facing = -1
		}

		return &Model{
			Mode:      ModeRadialOrigin,
			Direction: normal,
			Distance:  opts.Distance,
			Center:    *origin,
			Facing:    facing,
			Angle:     opts.Angle,
		}, nil
	}

	if a.Distance(b) < geom.Epsilon {
		return nil, fmt.Errorf("extrude: section %d endpoints %q and %q coincide: %w: %w",
			c.Index, p.A, p.B, mesh.ErrDegenerateGeometry, geom.ErrDegenerate)
	}

	if opts.ArcAngle != 0 {
		arc, err := geom.ArcCenter(a, b, opts.ArcAngle)
		if err != nil {
			return nil, fmt.Errorf("extrude: section %d arc %g°: %w: %w",
				c.Index, opts.ArcAngle, mesh.ErrDegenerateGeometry, err)
		}
		dist := opts.Distance
		if arc.Flip {
			dist = -dist
		}
		dir := normal
		if arc.Offset >= geom.Epsilon {
			dir = a.Midpoint(b).Sub(arc.Center).Normalize()
		}

		return &Model{
			Mode:      ModeRadialArc,
			Direction: dir,
			Distance:  dist,
			Center:    arc.Center,
			Facing:    1,
			Angle:     opts.Angle,
			Arc:       arc,
		}, nil
	}

	return &Model{
		Mode:      ModeLinear,
		Direction: normal.RotateDeg(opts.Angle),
		Distance:  opts.Distance,
		Facing:    1,
	}, nil
}

// Apply returns the extruded position of pos.
//
// Linear: pos + Distance·Direction.
// Radial without angle: pos + Distance·unit(Center-pos).
// Radial with angle: Center + (|Center-pos| - Distance)·rot(unit(pos-Center), Angle).
func (m *Model) Apply(pos geom.Vec2) geom.Vec2 {
	if m.Mode == ModeLinear {
		return pos.Add(m.Direction.Scale(m.Distance))
	}
	toCenter := m.Center.Sub(pos)
	if m.Angle == 0 {
		return pos.Add(toCenter.Normalize().Scale(m.Distance))
	}
	ray := toCenter.Reversed().Normalize().RotateDeg(m.Angle)

	return m.Center.Add(ray.Scale(toCenter.Length() - m.Distance))
}
