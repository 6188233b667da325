package distribute

import (
	"fmt"

	"github.com/katalvlaran/linework/mesh"
)

// Defaults applied by DefaultOptions.
const (
	DefaultKind  = 2014
	DefaultCount = 8
)

// Option configures a Distribute call.
type Option func(*Options)

// Options holds the parameters of one placement run.
type Options struct {
	// Kind is the marker kind passed to the host's CreateMarker.
	Kind int

	// Count is the number of markers to place. Must be at least 1.
	Count int
}

// DefaultOptions returns Kind 2014 and Count 8.
func DefaultOptions() Options {
	return Options{Kind: DefaultKind, Count: DefaultCount}
}

// WithKind sets the marker kind.
func WithKind(kind int) Option {
	return func(o *Options) { o.Kind = kind }
}

// WithCount sets the number of markers.
func WithCount(n int) Option {
	return func(o *Options) { o.Count = n }
}

// Validate reports option values that would make the run meaningless.
func (o Options) Validate() error {
	if o.Count < 1 {
		return fmt.Errorf("distribute: count %d: %w", o.Count, mesh.ErrInvalidCount)
	}

	return nil
}

// Result describes a finished placement run.
type Result struct {
	// Components is the number of connected components walked.
	Components int

	// TotalLength is the summed length of every selected edge.
	TotalLength float64

	// Placements in plan order.
	Placements []Placement

	// Markers are the host IDs of the created markers, parallel to Placements.
	Markers []string
}

// Summary returns the one-line report shown after a run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Distributed along %d component(s).", r.Components)
}
