// SPDX-License-Identifier: MIT
// Package: linework/extrude
//
// mutate.go - applying a prepared section to the host.
//
// Contract:
//   • Section holds every position a mutation needs; nothing is read back
//     from the host for geometry once mutation starts.
//   • Move splits the section edges at each endpoint and relocates the other
//     vertices, then stitches once.
//   • Copy draws connectors and duplicates, stitching after every draw.

package extrude

import (
	"fmt"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mesh"
)

// Section is one component ready to be extruded.
type Section struct {
	Component component.Component
	Pair      Pair
	Model     *Model

	// Orig holds the positions of the section vertices and both endpoints.
	Orig map[string]geom.Vec2

	// Ext holds the extruded position of every section vertex.
	Ext map[string]geom.Vec2

	// Links are the (start, end) vertices of the section edges, in edge order.
	Links [][2]string
}

// Prepare selects endpoints, builds the model and computes every extruded
// position of c without touching the host.
func Prepare(r mesh.Reader, c component.Component, opts Options, origin *geom.Vec2) (*Section, error) {
	p, err := Endpoints(r, &c)
	if err != nil {
		return nil, err
	}
	m, err := Build(r, c, p, opts, origin)
	if err != nil {
		return nil, err
	}
	s := &Section{
		Component: c,
		Pair:      p,
		Model:     m,
		Orig:      make(map[string]geom.Vec2, len(c.Vertices)+2),
		Ext:       make(map[string]geom.Vec2, len(c.Vertices)),
	}
	for _, v := range append([]string{p.A, p.B}, c.Vertices...) {
		if _, ok := s.Orig[v]; ok {
			continue
		}
		pos, err := r.Position(v)
		if err != nil {
			return nil, fmt.Errorf("extrude: vertex %q: %w", v, err)
		}
		s.Orig[v] = pos
	}
	if !p.Synthesized {
		for _, e := range c.Edges {
			a, b, err := r.Endpoints(e)
			if err != nil {
				return nil, fmt.Errorf("extrude: edge %q: %w", e, err)
			}
			s.Links = append(s.Links, [2]string{a, b})
		}
	}
	for _, v := range c.Vertices {
		ext := m.Apply(s.Orig[v])
		if !ext.IsFinite() {
			return nil, fmt.Errorf("extrude: vertex %q maps to %v: %w", v, ext, mesh.ErrDegenerateGeometry)
		}
		s.Ext[v] = ext
	}

	return s, nil
}

// isEndpoint reports whether v is one of the section's endpoints.
func (s *Section) isEndpoint(v string) bool { return v == s.Pair.A || v == s.Pair.B }

// Move extrudes the section in place.
//
// For an endpoint with incident section edges, each such edge is split at
// the endpoint's extruded position and the new edge joins the section; the
// endpoint itself stays. When reselect is set (vertex selection) the
// endpoint is deselected and each split vertex selected. Every other vertex
// is moved to its extruded position.
func Move(h mesh.Host, s *Section, reselect bool) error {
	live := make(map[string]bool, len(s.Component.Edges))
	for _, e := range s.Component.Edges {
		live[e] = true
	}

	for _, v := range s.Component.Vertices {
		if s.isEndpoint(v) {
			inc, err := h.IncidentEdges(v)
			if err != nil {
				return fmt.Errorf("extrude: vertex %q: %w", v, err)
			}
			var lines []string
			for _, e := range inc {
				if live[e] {
					lines = append(lines, e)
				}
			}
			if len(lines) > 0 {
				for _, e := range lines {
					nv, ne, err := h.SplitEdge(e, s.Ext[v])
					if err != nil {
						return fmt.Errorf("extrude: split %q: %w", e, err)
					}
					live[ne] = true
					if reselect {
						if err = h.SetVertexSelected(v, false); err != nil {
							return fmt.Errorf("extrude: deselect %q: %w", v, err)
						}
						if err = h.SetVertexSelected(nv, true); err != nil {
							return fmt.Errorf("extrude: select %q: %w", nv, err)
						}
					}
				}
				continue
			}
		}
		if err := h.SetPosition(v, s.Ext[v]); err != nil {
			return fmt.Errorf("extrude: move %q: %w", v, err)
		}
	}

	if err := h.Stitch(); err != nil {
		return fmt.Errorf("extrude: stitch: %w", err)
	}

	return nil
}

// Copy extrudes a duplicate of the section and connects it to the original.
//
// Regular sections get a connector from endpoint A to its duplicate, one
// from the duplicate of B back to B, and a duplicate of every section edge
// with its direction kept. A single-vertex section instead connects its
// first neighbour to the duplicate vertex and the duplicate to its second
// neighbour.
func Copy(m mesh.Mutator, s *Section) error {
	draw := func(a, b geom.Vec2) error {
		if _, err := m.DrawEdge(a, b); err != nil {
			return fmt.Errorf("extrude: draw: %w", err)
		}
		if err := m.Stitch(); err != nil {
			return fmt.Errorf("extrude: stitch: %w", err)
		}

		return nil
	}

	c := s.Component
	if s.Pair.Synthesized {
		v := c.Vertices[0]
		if err := draw(s.Orig[s.Pair.A], s.Ext[v]); err != nil {
			return err
		}

		return draw(s.Ext[v], s.Orig[s.Pair.B])
	}

	for _, v := range c.Vertices {
		if v == s.Pair.A {
			if err := draw(s.Orig[v], s.Ext[v]); err != nil {
				return err
			}
		}
		if v == s.Pair.B {
			if err := draw(s.Ext[v], s.Orig[v]); err != nil {
				return err
			}
		}
	}
	for _, l := range s.Links {
		if err := draw(s.Ext[l[0]], s.Ext[l[1]]); err != nil {
			return err
		}
	}

	return nil
}
