package component

// Component is a maximal set of vertices and edges that are mutually
// reachable through the selection. Vertices and Edges keep discovery order.
type Component struct {
	// Index is the component's position in decomposition order.
	Index int

	// Vertices in discovery order.
	Vertices []string

	// Edges in discovery order.
	Edges []string

	vertSet map[string]struct{}
	edgeSet map[string]struct{}
}

// New builds a Component from explicit vertex and edge lists. Duplicates are
// dropped, keeping the first occurrence.
func New(index int, verts, edges []string) Component {
	c := Component{
		Index:   index,
		vertSet: make(map[string]struct{}, len(verts)),
		edgeSet: make(map[string]struct{}, len(edges)),
	}
	for _, v := range verts {
		c.addVertex(v)
	}
	for _, e := range edges {
		c.addEdge(e)
	}

	return c
}

func (c *Component) addVertex(id string) {
	if _, ok := c.vertSet[id]; ok {
		return
	}
	c.vertSet[id] = struct{}{}
	c.Vertices = append(c.Vertices, id)
}

func (c *Component) addEdge(id string) {
	if _, ok := c.edgeSet[id]; ok {
		return
	}
	c.edgeSet[id] = struct{}{}
	c.Edges = append(c.Edges, id)
}

// HasVertex reports whether the vertex belongs to the component.
func (c Component) HasVertex(id string) bool {
	_, ok := c.vertSet[id]

	return ok
}

// HasEdge reports whether the edge belongs to the component.
func (c Component) HasEdge(id string) bool {
	_, ok := c.edgeSet[id]

	return ok
}

// IsPoint reports whether the component is a single vertex without edges.
func (c Component) IsPoint() bool {
	return len(c.Vertices) == 1 && len(c.Edges) == 0
}

// WithEdges returns a copy of c whose edge set is replaced by edges.
func (c Component) WithEdges(edges []string) Component {
	return New(c.Index, c.Vertices, edges)
}
