// Package mapio reads and writes planar maps.
//
// # JSON Format
//
// A map document has four top-level members; only "vertices" and "edges"
// are required:
//
//	{
//	  "vertices": [{"id": "v1", "x": 0, "y": 0}, {"id": "v2", "x": 64, "y": 0}],
//	  "edges":    [{"id": "e1", "start": "v1", "end": "v2"}],
//	  "selection": {"vertices": [], "edges": ["e1"]},
//	  "markers":  [{"id": "t1", "x": 32, "y": 0, "kind": 2014}]
//	}
//
// IDs are kept on import, so a document can be read, operated on and
// written back with stable references. Selection order is preserved; it is
// the order the operations use for tie-breaking.
//
// # Import and Export
//
// Use [ReadJSON] / [WriteJSON] with any reader or writer, or [Import] /
// [Export] for files.
//
// # Previews
//
// [WriteSVG] draws the map as a standalone SVG (y axis up). [ToDOT] emits a
// Graphviz graph with every vertex pinned to its position, and [RenderDOT]
// lays it out with neato.
package mapio
