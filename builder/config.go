// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin    = (0, 0)
//   • scale     = 1
//   • rotation  = 0 degrees
//   • jitter    = 0 (no rng needed)
//   • selection = SelectNone

package builder

import (
	"math/rand"

	"github.com/katalvlaran/linework/geom"
)

// Select chooses what a constructor selects after placing its shape.
type Select int

const (
	// SelectNone leaves the selection untouched.
	SelectNone Select = iota
	// SelectEdges adds every created edge to the edge selection.
	SelectEdges
	// SelectVertices adds every created vertex to the vertex selection.
	SelectVertices
)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	origin    geom.Vec2
	scale     float64
	rotation  float64 // degrees
	jitter    float64
	rng       *rand.Rand
	selection Select
}

const defaultScale = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// place maps a shape-local point to map coordinates: scale, rotate, translate
// by origin, then jitter.
func (c builderConfig) place(local geom.Vec2) geom.Vec2 {
	p := local.Scale(c.scale)
	if c.rotation != 0 {
		p = p.RotateDeg(c.rotation)
	}
	p = p.Add(c.origin)
	if c.jitter > 0 && c.rng != nil {
		p = p.Add(geom.V(
			(c.rng.Float64()*2-1)*c.jitter,
			(c.rng.Float64()*2-1)*c.jitter,
		))
	}

	return p
}
