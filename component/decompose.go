package component

import "fmt"

// EdgeComponents partitions the selected edges of an edge-mode view into
// connected components.
//
// Seeds are taken in SelectionIndex order. From a seed the traversal is a
// pre-order depth-first walk: on entering an edge it is consumed, then every
// edge incident to its start vertex is tried, then every edge incident to its
// end vertex. Only selected, unconsumed edges are entered. The walk uses an
// explicit stack so arbitrarily long chains do not grow the goroutine stack.
//
// Determinism: identical host state and selection yield identical output.
// Complexity: O(V + E) over the selected sub-graph plus incident scans.
//
// Errors:
//   - wraps the host error when an edge or vertex stops resolving mid-walk.
func EdgeComponents(v *View) ([]Component, error) {
	type frame struct {
		lines []string
		i     int
	}

	remaining := make(map[string]struct{}, len(v.edges))
	for _, e := range v.edges {
		remaining[e] = struct{}{}
	}

	var out []Component
	for _, seed := range v.edges {
		if _, ok := remaining[seed]; !ok {
			continue
		}
		c := New(len(out), nil, nil)
		var stack []frame

		enter := func(e string) error {
			delete(remaining, e)
			c.addEdge(e)
			s, t, err := v.Endpoints(e)
			if err != nil {
				return fmt.Errorf("component: edge %q: %w", e, err)
			}
			c.addVertex(s)
			c.addVertex(t)
			in1, err := v.Incident(s)
			if err != nil {
				return fmt.Errorf("component: vertex %q: %w", s, err)
			}
			in2, err := v.Incident(t)
			if err != nil {
				return fmt.Errorf("component: vertex %q: %w", t, err)
			}
			lines := make([]string, 0, len(in1)+len(in2))
			lines = append(lines, in1...)
			lines = append(lines, in2...)
			stack = append(stack, frame{lines: lines})

			return nil
		}

		if err := enter(seed); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i >= len(top.lines) {
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.lines[top.i]
			top.i++
			if _, ok := remaining[next]; ok {
				if err := enter(next); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, c)
	}

	return out, nil
}

// VertexComponents partitions the view for extrusion.
//
// The vertex set is the selected vertices in vertex mode, otherwise the
// endpoints of the selected edges. Seeds are the first unvisited vertex in
// view order. On visiting a vertex every incident ambient edge is examined;
// the edge joins the component when (the view is in vertex mode or the edge
// is selected) and its other endpoint is either still unvisited in the
// vertex set or already in this component. Unvisited neighbours are then
// visited depth-first.
//
// A selected vertex with no qualifying edges forms a point component.
//
// Errors:
//   - wraps the host error when an edge or vertex stops resolving mid-walk.
func VertexComponents(v *View) ([]Component, error) {
	type frame struct {
		vertex string
		lines  []string
		i      int
	}

	pending := make(map[string]struct{}, len(v.verts))
	for _, id := range v.verts {
		pending[id] = struct{}{}
	}

	var out []Component
	for _, seed := range v.verts {
		if _, ok := pending[seed]; !ok {
			continue
		}
		c := New(len(out), nil, nil)
		var stack []frame

		visit := func(id string) error {
			delete(pending, id)
			c.addVertex(id)
			lines, err := v.Incident(id)
			if err != nil {
				return fmt.Errorf("component: vertex %q: %w", id, err)
			}
			stack = append(stack, frame{vertex: id, lines: lines})

			return nil
		}

		if err := visit(seed); err != nil {
			return nil, err
		}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i >= len(top.lines) {
				stack = stack[:len(stack)-1]
				continue
			}
			line := top.lines[top.i]
			top.i++
			if !v.vertexMode && !v.HasEdge(line) {
				continue
			}
			s, t, err := v.Endpoints(line)
			if err != nil {
				return nil, fmt.Errorf("component: edge %q: %w", line, err)
			}
			u := t
			if u == top.vertex {
				u = s
			}
			_, open := pending[u]
			if !open && !c.HasVertex(u) {
				continue
			}
			c.addEdge(line)
			if open {
				if err := visit(u); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, c)
	}

	return out, nil
}
