// SPDX-License-Identifier: MIT
// Package: linework/extrude
//
// options.go - functional options for Extrude.
//
// Contract:
//   • Options are functional (type Option func(*Options)) applied over
//     DefaultOptions().
//   • Values are validated once by Validate at the start of an invocation;
//     option constructors never fail.
//   • Angles are in degrees.

package extrude

import (
	"fmt"

	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

// DefaultDistance is the extrusion distance used when none is given.
const DefaultDistance = 64

// Option configures an Extrude call.
type Option func(*Options)

// Options holds the scalar parameters of one extrusion.
type Options struct {
	// Distance is the signed extrusion magnitude.
	Distance float64

	// Copy duplicates the component and stitches it to the original instead
	// of moving it.
	Copy bool

	// Angle rotates the linear direction, or the radial ray in radial modes.
	Angle float64

	// ArcAngle, when non-zero and no radial origin is selected, is the signed
	// angle the component spans from its first to its second endpoint. It
	// selects arc-based radial extrusion.
	ArcAngle float64

	// RadialVertexSelect makes the first isolated selected vertex the radial
	// origin instead of a section to extrude.
	RadialVertexSelect bool
}

// DefaultOptions returns Distance 64 with every other option off.
func DefaultOptions() Options {
	return Options{Distance: DefaultDistance}
}

// WithDistance sets the signed extrusion distance.
func WithDistance(d float64) Option {
	return func(o *Options) { o.Distance = d }
}

// WithCopy selects copy-and-stitch mode.
func WithCopy(on bool) Option {
	return func(o *Options) { o.Copy = on }
}

// WithAngle sets the angle adjustment in degrees.
func WithAngle(deg float64) Option {
	return func(o *Options) { o.Angle = deg }
}

// WithArcAngle sets the signed arc angle in degrees.
func WithArcAngle(deg float64) Option {
	return func(o *Options) { o.ArcAngle = deg }
}

// WithRadialVertexSelect enables taking the radial origin from the selection.
func WithRadialVertexSelect(on bool) Option {
	return func(o *Options) { o.RadialVertexSelect = on }
}

// Validate rejects non-finite numeric options.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"distance", o.Distance},
		{"angle", o.Angle},
		{"arc angle", o.ArcAngle},
	} {
		if !geom.IsFinite(f.v) {
			return fmt.Errorf("extrude: %s %g: %w", f.name, f.v, mesh.ErrInvalidOption)
		}
	}

	return nil
}
