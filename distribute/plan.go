package distribute

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
	"github.com/katalvlaran/linework/walk"
)

// Plan returns count strictly increasing distances, each centered in one of
// count equal buckets of [0, total].
func Plan(total float64, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("distribute: count %d: %w", count, mesh.ErrInvalidCount)
	}
	if !(total > 0) || !geom.IsFinite(total) {
		return nil, fmt.Errorf("distribute: total length %g: %w", total, mesh.ErrDegenerateGeometry)
	}
	step := total / float64(count)
	out := make([]float64, count)
	for i := range out {
		out[i] = (float64(i) + 0.5) * step
	}

	return out, nil
}

// Placement is one marker position on an edge.
type Placement struct {
	Edge     string    // edge the marker lies on
	T        float64   // parameter from the walk's From vertex (0) to its To vertex (1)
	Position geom.Vec2 // interpolated location
	Distance float64   // global arc-length distance from the plan
}

// Placer consumes a plan in order while components are fed to it.
type Placer struct {
	plan    []float64
	next    int
	total   float64 // length the plan was built for
	covered float64 // global distance reached by the last fed step

	tail    walk.Step // last step fed
	tailEnd geom.Vec2 // position of tail.To
	fed     bool
}

// NewPlacer returns a Placer over plan, built for a selection of the given
// total length.
func NewPlacer(plan []float64, total float64) *Placer {
	return &Placer{plan: plan, total: total}
}

// Remaining returns the number of plan entries not yet placed.
func (p *Placer) Remaining() int { return len(p.plan) - p.next }

// Feed maps plan entries onto the steps of one component. offset is the
// global distance already covered by earlier components. An entry lands on
// a step when it is at most offset+step.After(); its parameter is measured
// from the step's From vertex.
func (p *Placer) Feed(offset float64, steps []walk.Step, pos func(id string) (geom.Vec2, error)) ([]Placement, error) {
	var out []Placement
	for _, s := range steps {
		before := offset + s.Before
		a, err := pos(s.From)
		if err != nil {
			return nil, fmt.Errorf("distribute: vertex %q: %w", s.From, err)
		}
		b, err := pos(s.To)
		if err != nil {
			return nil, fmt.Errorf("distribute: vertex %q: %w", s.To, err)
		}
		for p.next < len(p.plan) && p.plan[p.next] <= before+s.Length {
			d := p.plan[p.next]
			var t float64
			if s.Length > 0 {
				t = (d - before) / s.Length
			}
			out = append(out, Placement{Edge: s.Edge, T: t, Position: a.Lerp(b, t), Distance: d})
			p.next++
		}
		p.tail, p.tailEnd, p.fed = s, b, true
		p.covered = before + s.Length
	}

	return out, nil
}

// Finish checks that the fed steps covered the planned total and places
// entries left over by floating-point rounding at the far end of the last
// fed edge. Both comparisons allow geom.Epsilon relative to the total.
//
// Errors:
//   - mesh.ErrDegenerateGeometry when the walked length differs from the
//     total, or when plan entries lie beyond the walked length.
func (p *Placer) Finish() ([]Placement, error) {
	tol := geom.Epsilon * p.total
	if math.Abs(p.covered-p.total) > tol {
		return nil, fmt.Errorf("distribute: walked %g of %g: %w", p.covered, p.total, mesh.ErrDegenerateGeometry)
	}
	if p.next == len(p.plan) {
		return nil, nil
	}
	if !p.fed || p.plan[len(p.plan)-1] > p.covered+tol {
		return nil, fmt.Errorf("distribute: %d plan entries beyond walked length %g: %w",
			p.Remaining(), p.covered, mesh.ErrDegenerateGeometry)
	}
	out := make([]Placement, 0, p.Remaining())
	for ; p.next < len(p.plan); p.next++ {
		out = append(out, Placement{Edge: p.tail.Edge, T: 1, Position: p.tailEnd, Distance: p.plan[p.next]})
	}

	return out, nil
}
