package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/mapio"
)

// outputFlags are the flags shared by the mutating commands.
type outputFlags struct {
	output  string // map document path
	inPlace bool   // overwrite the input document
	svg     string // optional SVG preview path
	dot     string // optional Graphviz DOT path
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.output, "output", "o", "", "output map file (default: <input>.<command>.json)")
	fs.BoolVar(&o.inPlace, "in-place", false, "overwrite the input map file")
	fs.StringVar(&o.svg, "svg", "", "also write an SVG preview to this path")
	fs.StringVar(&o.dot, "dot", "", "also write a Graphviz DOT graph to this path")
}

// target returns the map document path for input.
func (o outputFlags) target(input, suffix string) string {
	switch {
	case o.inPlace:
		return input
	case o.output != "":
		return o.output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))

	return base + "." + suffix + ".json"
}

// write exports m and any requested previews, returning the written paths.
func (o outputFlags) write(ctx context.Context, m *core.Map, input, suffix string) ([]string, error) {
	path := o.target(input, suffix)
	if err := mapio.Export(m, path); err != nil {
		return nil, fmt.Errorf("write output %s: %w", path, err)
	}
	paths := []string{path}

	if o.svg != "" {
		if err := writeSVG(m, o.svg); err != nil {
			return paths, err
		}
		paths = append(paths, o.svg)
	}
	if o.dot != "" {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		if err := os.WriteFile(o.dot, []byte(mapio.ToDOT(m)), 0o644); err != nil {
			return paths, fmt.Errorf("write dot %s: %w", o.dot, err)
		}
		paths = append(paths, o.dot)
	}

	return paths, nil
}

func (c *CLI) loadMap(path string) (*core.Map, error) {
	m, err := mapio.Import(path, c.config.Map.MapOptions()...)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	st := m.Stats()
	c.Logger.Debug("map loaded", "path", path,
		"vertices", st.Vertices, "edges", st.Edges,
		"selectedVertices", st.SelectedVertices, "selectedEdges", st.SelectedEdges)

	return m, nil
}

func writeSVG(m *core.Map, path string, opts ...mapio.SVGOption) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = mapio.WriteSVG(m, f, opts...); err != nil {
		f.Close()
		return fmt.Errorf("write svg %s: %w", path, err)
	}

	return f.Close()
}
