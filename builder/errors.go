// SPDX-License-Identifier: MIT
// Package: linework/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach method context with %w (see builderErrorf).
//   • Option constructors panic on programmer error; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidAngle indicates a zero or non-finite sweep angle.
var ErrInvalidAngle = errors.New("builder: invalid angle")

// ErrNeedRandSource indicates WithJitter was used without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a store failure while
// placing a shape.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the constructor name and a formatted detail.
func builderErrorf(method, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
