package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linework/builder"
	"github.com/katalvlaran/linework/geom"
	"github.com/katalvlaran/linework/mapio"
)

const (
	selectNone     = "none"
	selectEdges    = "edges"
	selectVertices = "vertices"
)

type newOpts struct {
	output    string
	n         int
	cols      int
	sweep     float64
	scale     float64
	rotation  float64
	x, y      float64
	jitter    float64
	seed      int64
	selection string
	origin    bool
}

// newCommand creates the new command, which writes a generated map document.
func (c *CLI) newCommand() *cobra.Command {
	opts := newOpts{n: 4, cols: 4, sweep: 90, scale: 100, selection: selectEdges}

	cmd := &cobra.Command{
		Use:   "new [path|polygon|arc|grid|star|wheel|point]",
		Short: "Write a generated wireframe map",
		Long: `Write a generated wireframe map document.

--size (-n) is the vertex count of paths, polygons and wheels, the segment count of
arcs, the leaf count of stars and the row count of grids. --origin adds a
selected isolated vertex at the anchor for radial extrusion.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"path", "polygon", "arc", "grid", "star", "wheel", "point"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNew(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <shape>.json)")
	cmd.Flags().IntVarP(&opts.n, "size", "n", opts.n, "shape size")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().Float64Var(&opts.sweep, "sweep", opts.sweep, "arc sweep in degrees")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "segment length or radius")
	cmd.Flags().Float64Var(&opts.rotation, "rotate", 0, "rotation in degrees")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "anchor x")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "anchor y")
	cmd.Flags().Float64Var(&opts.jitter, "jitter", 0, "random position jitter")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "jitter seed")
	cmd.Flags().StringVar(&opts.selection, "select", opts.selection, "select: edges (default), vertices, none")
	cmd.Flags().BoolVar(&opts.origin, "origin", false, "add a selected origin vertex at the anchor")

	return cmd
}

func shapeConstructor(shape string, o newOpts) (builder.Constructor, error) {
	switch strings.ToLower(shape) {
	case "path":
		return builder.Path(o.n), nil
	case "polygon":
		return builder.Polygon(o.n), nil
	case "arc":
		return builder.Arc(o.n, o.sweep), nil
	case "grid":
		return builder.Grid(o.n, o.cols), nil
	case "star":
		return builder.Star(o.n), nil
	case "wheel":
		return builder.Wheel(o.n), nil
	case "point":
		return builder.Point(), nil
	default:
		return nil, fmt.Errorf("invalid shape: %s", shape)
	}
}

func parseSelect(s string) (builder.Select, error) {
	switch s {
	case selectNone:
		return builder.SelectNone, nil
	case selectEdges:
		return builder.SelectEdges, nil
	case selectVertices:
		return builder.SelectVertices, nil
	default:
		return 0, fmt.Errorf("invalid selection: %s (must be edges, vertices or none)", s)
	}
}

func (c *CLI) runNew(shape string, o newOpts) error {
	con, err := shapeConstructor(shape, o)
	if err != nil {
		return err
	}
	sel, err := parseSelect(o.selection)
	if err != nil {
		return err
	}
	if o.scale <= 0 || !geom.IsFinite(o.scale) {
		return fmt.Errorf("invalid scale: %g", o.scale)
	}
	if o.jitter < 0 || !geom.IsFinite(o.jitter) {
		return fmt.Errorf("invalid jitter: %g", o.jitter)
	}
	anchor := geom.V(o.x, o.y)
	if !anchor.IsFinite() || !geom.IsFinite(o.rotation) {
		return fmt.Errorf("invalid anchor or rotation")
	}

	m, err := builder.BuildMap(c.config.Map.MapOptions(), []builder.BuilderOption{
		builder.WithOrigin(anchor),
		builder.WithScale(o.scale),
		builder.WithRotation(o.rotation),
		builder.WithJitter(o.jitter),
		builder.WithSeed(o.seed),
		builder.WithSelection(sel),
	}, con)
	if err != nil {
		return fmt.Errorf("new %s: %w", shape, err)
	}
	if o.origin {
		err = builder.Apply(m, []builder.BuilderOption{
			builder.WithOrigin(anchor),
			builder.WithSelection(builder.SelectVertices),
		}, builder.Point())
		if err != nil {
			return fmt.Errorf("new %s: %w", shape, err)
		}
	}

	out := o.output
	if out == "" {
		out = strings.ToLower(shape) + ".json"
	}
	if err := mapio.Export(m, out); err != nil {
		return fmt.Errorf("write output %s: %w", out, err)
	}

	st := m.Stats()
	printSuccess(c.Out, "Generated %s", shape)
	printFile(c.Out, out)
	printStats(c.Out, st.Vertices, st.Edges, st.Markers)

	return nil
}
