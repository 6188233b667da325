package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linework/mapio"
)

const (
	engineNative = "native" // direct SVG writer
	engineNeato  = "neato"  // Graphviz neato with pinned positions

	formatSVG = "svg"
	formatDOT = "dot"
)

type renderOpts struct {
	output   string
	engine   string
	format   string
	vertices bool
	margin   float64
}

// renderCommand creates the render command for previewing a map.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{engine: engineNative, format: formatSVG, margin: 16}

	cmd := &cobra.Command{
		Use:   "render [map.json]",
		Short: "Render a map to SVG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRender(opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.engine, "engine", "e", opts.engine, "svg engine: native (default), neato")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.vertices, "vertices", false, "draw vertices (native engine)")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "padding around the drawing (native engine)")

	return cmd
}

func validateRender(o renderOpts) error {
	switch o.format {
	case formatSVG, formatDOT:
	default:
		return fmt.Errorf("invalid format: %s (must be svg or dot)", o.format)
	}
	switch o.engine {
	case engineNative, engineNeato:
	default:
		return fmt.Errorf("invalid engine: %s (must be native or neato)", o.engine)
	}

	return nil
}

func (c *CLI) runRender(ctx context.Context, input string, o renderOpts) error {
	m, err := c.loadMap(input)
	if err != nil {
		return err
	}
	out := o.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + o.format
	}

	switch {
	case o.format == formatDOT:
		err = os.WriteFile(out, []byte(mapio.ToDOT(m)), 0o644)
	case o.engine == engineNeato:
		var svg []byte
		svg, err = mapio.RenderDOT(ctx, mapio.ToDOT(m))
		if err == nil {
			err = os.WriteFile(out, svg, 0o644)
		}
	default:
		opts := []mapio.SVGOption{mapio.WithMargin(o.margin)}
		if o.vertices {
			opts = append(opts, mapio.WithVertices())
		}
		err = writeSVG(m, out, opts...)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", input, err)
	}

	st := m.Stats()
	printSuccess(c.Out, "Rendered %s", input)
	printFile(c.Out, out)
	printStats(c.Out, st.Vertices, st.Edges, st.Markers)

	return nil
}
