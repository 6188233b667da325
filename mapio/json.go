package mapio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/geom"
)

type document struct {
	Vertices  []vertex  `json:"vertices"`
	Edges     []edge    `json:"edges"`
	Selection selection `json:"selection"`
	Markers   []marker  `json:"markers,omitempty"`
}

type vertex struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type edge struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type selection struct {
	Vertices []string `json:"vertices"`
	Edges    []string `json:"edges"`
}

type marker struct {
	ID   string  `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind int     `json:"kind"`
}

// ReadJSON decodes a map document from r into a new core.Map.
//
// ReadJSON returns an error if the JSON is malformed, an ID is empty or
// duplicated, an edge or selection entry references an unknown ID, or a
// coordinate is not finite. Errors name the offending element.
// ReadJSON does not close r.
func ReadJSON(r io.Reader, opts ...core.MapOption) (*core.Map, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	m := core.NewMap(opts...)
	for _, v := range doc.Vertices {
		if err := m.AddVertexID(v.ID, geom.V(v.X, v.Y)); err != nil {
			return nil, fmt.Errorf("vertex %s: %w", v.ID, err)
		}
	}
	for _, e := range doc.Edges {
		if err := m.AddEdgeID(e.ID, e.Start, e.End); err != nil {
			return nil, fmt.Errorf("edge %s (%s->%s): %w", e.ID, e.Start, e.End, err)
		}
	}
	for _, mk := range doc.Markers {
		if err := m.AddMarkerID(mk.ID, geom.V(mk.X, mk.Y), mk.Kind); err != nil {
			return nil, fmt.Errorf("marker %s: %w", mk.ID, err)
		}
	}
	if err := m.SelectVertices(doc.Selection.Vertices...); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	if err := m.SelectEdges(doc.Selection.Edges...); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}

	return m, nil
}

// WriteJSON encodes m as an indented map document.
func WriteJSON(m *core.Map, w io.Writer) error {
	vs := m.Vertices()
	es := m.Edges()
	mks := m.Markers()
	out := document{
		Vertices: make([]vertex, len(vs)),
		Edges:    make([]edge, len(es)),
		Selection: selection{
			Vertices: m.SelectedVertices(),
			Edges:    m.SelectedEdges(),
		},
	}
	for i, v := range vs {
		out.Vertices[i] = vertex{ID: v.ID, X: v.Pos.X, Y: v.Pos.Y}
	}
	for i, e := range es {
		out.Edges[i] = edge{ID: e.ID, Start: e.Start, End: e.End}
	}
	for _, mk := range mks {
		out.Markers = append(out.Markers, marker{ID: mk.ID, X: mk.Pos.X, Y: mk.Pos.Y, Kind: mk.Kind})
	}
	if out.Selection.Vertices == nil {
		out.Selection.Vertices = []string{}
	}
	if out.Selection.Edges == nil {
		out.Selection.Edges = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// Import reads a map document from the file at path.
func Import(path string, opts ...core.MapOption) (*core.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadJSON(f, opts...)
}

// Export writes m as a map document to the file at path.
func Export(m *core.Map, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
