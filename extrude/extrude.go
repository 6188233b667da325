// SPDX-License-Identifier: MIT
// Package: linework/extrude
//
// extrude.go - the Extrude driver.

package extrude

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

// Result describes a finished extrusion.
type Result struct {
	// Sections is the number of components extruded.
	Sections int

	// Origin is the vertex used as radial origin, if any.
	Origin string

	// Models are the per-section transforms, in section order.
	Models []Model
}

// Summary returns the one-line report shown after a run.
func (r *Result) Summary() string {
	return fmt.Sprintf("Extruded %d section(s).", r.Sections)
}

// Extrude extrudes the selection of h.
func Extrude(ctx context.Context, h mesh.Host, opts ...Option) (*Result, error) {
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

	sections, origin, vertexMode, err := Plan(ctx, h, o)
	if err != nil {
		return nil, err
	}

	res := &Result{Sections: len(sections), Origin: origin}
	for _, s := range sections {
		if err = ctx.Err(); err != nil {
			return res, err
		}
		logger.Debug("extrude section",
			"index", s.Component.Index,
			"mode", s.Model.Mode,
			"endpoints", []string{s.Pair.A, s.Pair.B},
			"vertices", len(s.Component.Vertices),
			"edges", len(s.Component.Edges))
		if o.Copy {
			err = Copy(h, s)
		} else {
			err = Move(h, s, vertexMode)
		}
		if err != nil {
			return res, fmt.Errorf("extrude: section %d: %w", s.Component.Index, err)
		}
		res.Models = append(res.Models, *s.Model)
	}

	return res, nil
}

// Source is the read side of a host: geometry plus selection.
type Source interface {
	mesh.Reader
	mesh.Selector
}

// Plan decomposes the selection of r and prepares every section without
// mutating anything. It also returns the radial origin vertex (empty when
// none) and whether the selection was made of vertices.
func Plan(ctx context.Context, r Source, o Options) ([]*Section, string, bool, error) {
	verts := r.SelectedVertices()
	edges := r.SelectedEdges()
	if len(verts) == 0 && len(edges) == 0 {
		return nil, "", false, fmt.Errorf("extrude: %w", mesh.ErrNoSelection)
	}
	view, err := component.NewVertexView(r, verts, edges)
	if err != nil {
		return nil, "", false, fmt.Errorf("extrude: %w", err)
	}
	comps, err := component.VertexComponents(view)
	if err != nil {
		return nil, "", false, fmt.Errorf("extrude: %w", err)
	}

	var (
		originID  string
		originPos *geom.Vec2
	)
	if o.RadialVertexSelect {
		for i, c := range comps {
			if !c.IsPoint() {
				continue
			}
			originID = c.Vertices[0]
			pos, err := r.Position(originID)
			if err != nil {
				return nil, "", false, fmt.Errorf("extrude: origin %q: %w", originID, err)
			}
			originPos = &pos
			comps = append(comps[:i:i], comps[i+1:]...)
			break
		}
	}
	log.FromContext(ctx).Debug("extrude plan",
		"sections", len(comps), "vertexMode", view.VertexMode(), "origin", originID)

	sections := make([]*Section, 0, len(comps))
	for _, c := range comps {
		s, err := Prepare(r, c, o, originPos)
		if err != nil {
			return nil, "", false, err
		}
		sections = append(sections, s)
	}

	return sections, originID, view.VertexMode(), nil
}
