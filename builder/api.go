// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMap(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Factories are declared in impl_*.go, one shape per file.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps and IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linework/core"
)

// Constructor places one shape on m using the resolved builderConfig.
// Constructors validate their parameters before touching m and return
// sentinel errors wrapped with context; they never panic.
type Constructor func(m *core.Map, cfg builderConfig) error

// BuildMap creates a new core.Map with options mopts, resolves the builder
// configuration from bopts, and applies all constructors in order. The first
// constructor error is wrapped with "BuildMap: %w" and returned; the partial
// map is discarded.
func BuildMap(mopts []core.MapOption, bopts []BuilderOption, cons ...Constructor) (*core.Map, error) {
	m := core.NewMap(mopts...)
	if err := Apply(m, bopts, cons...); err != nil {
		return nil, err
	}

	return m, nil
}

// Apply runs constructors against an existing map.
func Apply(m *core.Map, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if cfg.jitter > 0 && cfg.rng == nil {
		return fmt.Errorf("BuildMap: jitter %g: %w", cfg.jitter, ErrNeedRandSource)
	}
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return fmt.Errorf("BuildMap: %w", err)
		}
	}

	return nil
}
