// SPDX-License-Identifier: MIT
// Package: linework/extrude
//
// endpoints.go - choosing the two extremity vertices of a section.
//
// Contract:
//   • Candidates come from an ordered list of strategies; each runs only
//     while fewer than two candidates are known.
//   • More than two candidates reduce to the farthest pair; ties keep the
//     first pair found (i outer, j inner, strict >).
//   • Exactly two endpoints or ErrAmbiguousDirection.
//   • The pair is ordered so A starts one of its incident section edges.

package extrude

import (
	"fmt"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/mesh"
)

// Pair holds the two endpoints of a section in canonical order.
type Pair struct {
	A, B string

	// Synthesized is set for single-vertex sections, whose endpoints are the
	// vertex's neighbours (or the vertex itself) rather than section members.
	Synthesized bool
}

// Tally is the per-vertex edge count of a section, shared by strategies.
type Tally struct {
	c      *component.Component
	inside map[string]int // incident section edges
	total  map[string]int // incident ambient edges
}

func newTally(r mesh.Reader, c *component.Component) (*Tally, error) {
	t := &Tally{
		c:      c,
		inside: make(map[string]int, len(c.Vertices)),
		total:  make(map[string]int, len(c.Vertices)),
	}
	for _, v := range c.Vertices {
		inc, err := r.IncidentEdges(v)
		if err != nil {
			return nil, fmt.Errorf("extrude: vertex %q: %w", v, err)
		}
		t.total[v] = len(inc)
		for _, e := range inc {
			if c.HasEdge(e) {
				t.inside[v]++
			}
		}
	}

	return t, nil
}

// Strategy proposes endpoint candidates given those found so far.
type Strategy struct {
	Name    string
	Collect func(t *Tally, found []string) []string
}

// PathEnds adds vertices touched by at most one section edge.
var PathEnds = Strategy{Name: "path-ends", Collect: func(t *Tally, found []string) []string {
	for _, v := range t.c.Vertices {
		if t.inside[v] <= 1 {
			found = append(found, v)
		}
	}

	return found
}}

// Boundary adds vertices with several section edges that also have edges
// outside the section.
var Boundary = Strategy{Name: "boundary", Collect: func(t *Tally, found []string) []string {
	for _, v := range t.c.Vertices {
		if n := t.inside[v]; n > 1 && n < t.total[v] {
			found = append(found, v)
		}
	}

	return found
}}

// AllVertices replaces the candidates with every section vertex.
var AllVertices = Strategy{Name: "all-vertices", Collect: func(t *Tally, _ []string) []string {
	return append([]string(nil), t.c.Vertices...)
}}

// DefaultStrategies returns PathEnds, Boundary, AllVertices.
func DefaultStrategies() []Strategy {
	return []Strategy{PathEnds, Boundary, AllVertices}
}

// Endpoints selects the endpoint pair of c with DefaultStrategies.
//
// A single-vertex section takes its neighbours as candidates and its edge set
// is widened in place to every ambient edge of the vertex; if it has fewer
// than two neighbours the vertex itself is added.
func Endpoints(r mesh.Reader, c *component.Component) (Pair, error) {
	return SelectEndpoints(r, c, DefaultStrategies())
}

// SelectEndpoints is Endpoints with an explicit strategy list.
func SelectEndpoints(r mesh.Reader, c *component.Component, strategies []Strategy) (Pair, error) {
	var (
		found []string
		synth bool
	)
	switch len(c.Vertices) {
	case 0:
		return Pair{}, fmt.Errorf("extrude: section %d is empty: %w", c.Index, mesh.ErrAmbiguousDirection)
	case 1:
		synth = true
		v := c.Vertices[0]
		inc, err := r.IncidentEdges(v)
		if err != nil {
			return Pair{}, fmt.Errorf("extrude: vertex %q: %w", v, err)
		}
		*c = c.WithEdges(inc)
		for _, e := range inc {
			u, err := mesh.OtherVertex(r, e, v)
			if err != nil {
				return Pair{}, fmt.Errorf("extrude: edge %q: %w", e, err)
			}
			found = append(found, u)
		}
		if len(found) < 2 {
			found = append(found, v)
		}
	default:
		t, err := newTally(r, c)
		if err != nil {
			return Pair{}, err
		}
		for _, s := range strategies {
			if len(found) >= 2 {
				break
			}
			found = s.Collect(t, found)
		}
	}

	if len(found) > 2 {
		var err error
		if found, err = farthest(r, found); err != nil {
			return Pair{}, err
		}
	}
	if len(found) != 2 {
		return Pair{}, fmt.Errorf("extrude: section %d has %d endpoint candidate(s): %w",
			c.Index, len(found), mesh.ErrAmbiguousDirection)
	}

	p := Pair{A: found[0], B: found[1], Synthesized: synth}
	swap, err := needsSwap(r, c, p.A)
	if err != nil {
		return Pair{}, err
	}
	if swap {
		p.A, p.B = p.B, p.A
	}

	return p, nil
}

// farthest returns the pair of candidates with the greatest separation, or
// nothing when every candidate coincides.
func farthest(r mesh.Reader, cands []string) ([]string, error) {
	var best []string
	var maxDist float64
	for i := range cands {
		pi, err := r.Position(cands[i])
		if err != nil {
			return nil, fmt.Errorf("extrude: vertex %q: %w", cands[i], err)
		}
		for j := range cands {
			pj, err := r.Position(cands[j])
			if err != nil {
				return nil, fmt.Errorf("extrude: vertex %q: %w", cands[j], err)
			}
			if d := pi.Distance(pj); d > maxDist {
				maxDist = d
				best = []string{cands[i], cands[j]}
			}
		}
	}

	return best, nil
}

// needsSwap reports whether a touches section edges but starts none of them.
func needsSwap(r mesh.Reader, c *component.Component, a string) (bool, error) {
	inc, err := r.IncidentEdges(a)
	if err != nil {
		return false, fmt.Errorf("extrude: vertex %q: %w", a, err)
	}
	touched := false
	for _, e := range inc {
		if !c.HasEdge(e) {
			continue
		}
		s, _, err := r.Endpoints(e)
		if err != nil {
			return false, fmt.Errorf("extrude: edge %q: %w", e, err)
		}
		if s == a {
			return false, nil
		}
		touched = true
	}

	return touched, nil
}
