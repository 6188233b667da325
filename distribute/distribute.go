package distribute

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/mesh"
	"github.com/katalvlaran/linework/walk"
)

// Distribute places opts.Count markers along the selected edges of h.
//
// Steps:
//  1. Validate options and the selection.
//  2. Decompose the selection into components and sum their lengths.
//  3. Build the distance plan.
//  4. Walk each component from its start and map plan entries onto it.
//  5. Create one marker per placement.
//
// No marker is created unless steps 1-4 succeed for every component.
func Distribute(ctx context.Context, h mesh.Host, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := log.FromContext(ctx)

	sel := h.SelectedEdges()
	if len(sel) == 0 {
		return nil, fmt.Errorf("distribute: %w", mesh.ErrNoSelection)
	}
	view, err := component.NewEdgeView(h, sel)
	if err != nil {
		return nil, fmt.Errorf("distribute: %w", err)
	}
	comps, err := component.EdgeComponents(view)
	if err != nil {
		return nil, fmt.Errorf("distribute: %w", err)
	}

	var total float64
	for _, c := range comps {
		l, err := walk.Length(h, c)
		if err != nil {
			return nil, fmt.Errorf("distribute: %w", err)
		}
		total += l
	}
	plan, err := Plan(total, o.Count)
	if err != nil {
		return nil, err
	}
	logger.Debug("distribute plan", "components", len(comps), "length", total, "count", o.Count)

	res := &Result{Components: len(comps), TotalLength: total}
	placer := NewPlacer(plan, total)
	var offset float64
	for _, c := range comps {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		se, sv, err := walk.Start(h, c)
		if err != nil {
			return nil, fmt.Errorf("distribute: component %d: %w", c.Index, err)
		}
		steps, err := walk.Walk(h, c, view.Index, se, sv)
		if err != nil {
			return nil, fmt.Errorf("distribute: component %d: %w", c.Index, err)
		}
		pl, err := placer.Feed(offset, steps, h.Position)
		if err != nil {
			return nil, err
		}
		logger.Debug("component walked", "index", c.Index, "start", sv, "edges", len(steps), "markers", len(pl))
		res.Placements = append(res.Placements, pl...)
		if n := len(steps); n > 0 {
			offset += steps[n-1].After()
		}
	}
	rest, err := placer.Finish()
	if err != nil {
		return nil, err
	}
	res.Placements = append(res.Placements, rest...)

	res.Markers = make([]string, 0, len(res.Placements))
	for _, p := range res.Placements {
		id, err := h.CreateMarker(p.Position, o.Kind)
		if err != nil {
			return res, fmt.Errorf("distribute: marker on %q: %w", p.Edge, err)
		}
		res.Markers = append(res.Markers, id)
	}

	return res, nil
}
