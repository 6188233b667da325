// Package walk orders the edges of one component for arc-length traversal.
//
// Walk performs a depth-first traversal from a chosen start edge and vertex.
// Entering an edge emits a Step carrying the running distance before it;
// the walk then descends into the far vertex's unvisited component edges in
// SelectionIndex order. Branches are visited one after another and cycles
// terminate because every edge is consumed once. Once the far side of the
// start edge is exhausted, the walk resumes at the start vertex, so a start
// edge in the middle of a component still reaches every edge.
//
// Start picks the start edge for a component: the first edge, in component
// order, with an endpoint touched by no other component edge (start vertex
// checked before end vertex). Pure cycles fall back to the first edge's
// start vertex.
//
// Errors:
//
//   - ErrEmptyComponent       the component has no edges.
//   - ErrStartNotInComponent  the start edge is foreign or the start vertex
//     is not one of its endpoints.
//   - ErrDisconnected         some component edge is unreachable from the
//     start edge.
//   - host errors are wrapped with the edge or vertex they concern.
package walk

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/mesh"
)

var (
	// ErrEmptyComponent indicates a component without edges.
	ErrEmptyComponent = errors.New("walk: component has no edges")

	// ErrStartNotInComponent indicates an invalid start edge or vertex.
	ErrStartNotInComponent = errors.New("walk: start not in component")

	// ErrDisconnected indicates a component whose edges do not form one
	// connected piece.
	ErrDisconnected = errors.New("walk: component is not connected")
)

// Step is one edge in visit order.
type Step struct {
	Edge string // edge entered
	From string // vertex the walk came from
	To   string // far vertex

	// Before is the running distance when the edge is entered, measured from
	// the component's start (0 for the first step).
	Before float64

	// Length is the Euclidean length of the edge.
	Length float64
}

// After returns the running distance once the edge has been traversed.
func (s Step) After() float64 { return s.Before + s.Length }

// walker holds the traversal state for one Walk call.
type walker struct {
	r     mesh.Reader
	c     component.Component
	order func(string) int

	consumed map[string]bool
	stack    []frame
	steps    []Step
	running  float64
}

// frame is a vertex whose candidate edges are being tried in order.
type frame struct {
	lines []string
	at    string
	i     int
}

// Walk traverses every edge of c exactly once starting with startEdge from
// startVertex. order maps an edge to its SelectionIndex; a nil order keeps
// the host's incident order.
//
// Complexity: O(E log d) where d is the largest vertex degree.
func Walk(r mesh.Reader, c component.Component, order func(string) int, startEdge, startVertex string) ([]Step, error) {
	if len(c.Edges) == 0 {
		return nil, ErrEmptyComponent
	}
	if !c.HasEdge(startEdge) {
		return nil, fmt.Errorf("%w: edge %q", ErrStartNotInComponent, startEdge)
	}
	s, e, err := r.Endpoints(startEdge)
	if err != nil {
		return nil, fmt.Errorf("walk: edge %q: %w", startEdge, err)
	}
	if startVertex != s && startVertex != e {
		return nil, fmt.Errorf("%w: vertex %q is not an endpoint of %q", ErrStartNotInComponent, startVertex, startEdge)
	}

	w := &walker{
		r:        r,
		c:        c,
		order:    order,
		consumed: make(map[string]bool, len(c.Edges)),
		steps:    make([]Step, 0, len(c.Edges)),
	}
	// The start vertex sits below the start edge's far side; startEdge itself
	// is skipped there once consumed.
	if err = w.push(startVertex); err != nil {
		return nil, err
	}
	if err = w.enter(startEdge, startVertex); err != nil {
		return nil, err
	}
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.i >= len(top.lines) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		next := top.lines[top.i]
		top.i++
		if w.consumed[next] {
			continue
		}
		if err = w.enter(next, top.at); err != nil {
			return nil, err
		}
	}
	if len(w.steps) != len(c.Edges) {
		return nil, fmt.Errorf("%w: walked %d of %d edges from %q", ErrDisconnected, len(w.steps), len(c.Edges), startEdge)
	}

	return w.steps, nil
}

// enter consumes edge coming from vertex v, records its Step and pushes the
// far vertex's candidate edges.
func (w *walker) enter(edge, v string) error {
	w.consumed[edge] = true
	u, err := mesh.OtherVertex(w.r, edge, v)
	if err != nil {
		return fmt.Errorf("walk: edge %q: %w", edge, err)
	}
	l, err := mesh.EdgeLength(w.r, edge)
	if err != nil {
		return fmt.Errorf("walk: edge %q: %w", edge, err)
	}
	w.steps = append(w.steps, Step{Edge: edge, From: v, To: u, Before: w.running, Length: l})
	w.running += l

	return w.push(u)
}

// push stacks u with its unconsumed component edges in walk order.
func (w *walker) push(u string) error {
	inc, err := w.r.IncidentEdges(u)
	if err != nil {
		return fmt.Errorf("walk: vertex %q: %w", u, err)
	}
	lines := make([]string, 0, len(inc))
	for _, o := range inc {
		if w.c.HasEdge(o) && !w.consumed[o] {
			lines = append(lines, o)
		}
	}
	if w.order != nil {
		slices.SortStableFunc(lines, func(a, b string) int { return w.order(a) - w.order(b) })
	}
	w.stack = append(w.stack, frame{lines: lines, at: u})

	return nil
}

// Start chooses the start edge and vertex for c.
func Start(r mesh.Reader, c component.Component) (edgeID, vertexID string, err error) {
	if len(c.Edges) == 0 {
		return "", "", ErrEmptyComponent
	}
	for _, line := range c.Edges {
		s, e, err := r.Endpoints(line)
		if err != nil {
			return "", "", fmt.Errorf("walk: edge %q: %w", line, err)
		}
		free, err := isExtremity(r, c, line, s)
		if err != nil {
			return "", "", err
		}
		if free {
			return line, s, nil
		}
		if free, err = isExtremity(r, c, line, e); err != nil {
			return "", "", err
		}
		if free {
			return line, e, nil
		}
	}
	s, _, err := r.Endpoints(c.Edges[0])
	if err != nil {
		return "", "", fmt.Errorf("walk: edge %q: %w", c.Edges[0], err)
	}

	return c.Edges[0], s, nil
}

// isExtremity reports whether no component edge other than line touches v.
func isExtremity(r mesh.Reader, c component.Component, line, v string) (bool, error) {
	inc, err := r.IncidentEdges(v)
	if err != nil {
		return false, fmt.Errorf("walk: vertex %q: %w", v, err)
	}
	for _, o := range inc {
		if o != line && c.HasEdge(o) {
			return false, nil
		}
	}

	return true, nil
}

// Length returns the sum of the edge lengths of c.
func Length(r mesh.Reader, c component.Component) (float64, error) {
	var total float64
	for _, e := range c.Edges {
		l, err := mesh.EdgeLength(r, e)
		if err != nil {
			return 0, fmt.Errorf("walk: edge %q: %w", e, err)
		}
		total += l
	}

	return total, nil
}
