// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Randomness is explicit: jitter only applies with WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/linework/geom"
)

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithOrigin translates every placed point by o.
func WithOrigin(o geom.Vec2) BuilderOption {
	if !o.IsFinite() {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) { c.origin = o }
}

// WithScale sets the unit length: segment length of paths and grids, radius
// of polygons, arcs, stars and wheels. Panics unless s is finite and > 0.
func WithScale(s float64) BuilderOption {
	if !geom.IsFinite(s) || s <= 0 {
		panic("builder: WithScale(s) requires finite s > 0")
	}
	return func(c *builderConfig) { c.scale = s }
}

// WithRotation rotates every shape about its anchor by deg degrees.
func WithRotation(deg float64) BuilderOption {
	if !geom.IsFinite(deg) {
		panic("builder: WithRotation(non-finite)")
	}
	return func(c *builderConfig) { c.rotation = deg }
}

// WithJitter perturbs each coordinate uniformly within [-amount, amount].
// Requires an rng (WithSeed or WithRand). Panics on negative or non-finite amount.
func WithJitter(amount float64) BuilderOption {
	if !geom.IsFinite(amount) || amount < 0 {
		panic("builder: WithJitter(amount) requires finite amount >= 0")
	}
	return func(c *builderConfig) { c.jitter = amount }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so jittered fixtures are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSelection sets what constructors select.
func WithSelection(s Select) BuilderOption {
	return func(c *builderConfig) { c.selection = s }
}
