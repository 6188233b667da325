package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linework/component"
	"github.com/katalvlaran/linework/core"
	"github.com/katalvlaran/linework/distribute"
	"github.com/katalvlaran/linework/extrude"
	"github.com/katalvlaran/linework/walk"
)

const (
	opDistribute = "distribute"
	opExtrude    = "extrude"
)

// inspectCommand creates the inspect command. It runs the requested
// operation's planning stage on a copy of the map and prints what the
// operation would do without writing anything.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		op   string
		dist distributeFlags
		extr extrudeFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect [map.json]",
		Short: "Show the sections an operation would work on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch op {
			case opDistribute:
				return c.inspectDistribute(cmd.Context(), args[0], dist.options(cmd.Flags(), c.config.Distribute))
			case opExtrude:
				return c.inspectExtrude(cmd.Context(), args[0], extr.options(cmd.Flags(), c.config.Extrude))
			default:
				return fmt.Errorf("invalid operation: %s (must be distribute or extrude)", op)
			}
		},
	}

	cmd.Flags().StringVar(&op, "op", opDistribute, "operation to inspect: distribute (default), extrude")
	dist.register(cmd.Flags())
	extr.register(cmd.Flags())

	return cmd
}

func (c *CLI) inspectDistribute(ctx context.Context, input string, opts []distribute.Option) error {
	m, err := c.loadMap(input)
	if err != nil {
		return err
	}
	ctx, _ = c.withRun(ctx, "inspect")

	view, err := component.NewEdgeView(m, m.SelectedEdges())
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}
	comps, err := component.EdgeComponents(view)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}

	// The dry run works on a clone so the loaded map stays untouched.
	res, err := distribute.Distribute(ctx, m.Clone(), opts...)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}

	printTitle(c.Out, "%d component(s), total length %.4g", len(comps), res.TotalLength)
	for _, comp := range comps {
		length, err := walk.Length(m, comp)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", input, err)
		}
		_, start, err := walk.Start(m, comp)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", input, err)
		}
		markers := 0
		for _, p := range res.Placements {
			if comp.HasEdge(p.Edge) {
				markers++
			}
		}
		printKeyValue(c.Out, fmt.Sprintf("component %d", comp.Index),
			fmt.Sprintf("%d edge(s), length %.4g, start %s, %d marker(s)", len(comp.Edges), length, start, markers))
		printDetail(c.Out, "%s", strings.Join(comp.Edges, " "))
	}

	return nil
}

func (c *CLI) inspectExtrude(ctx context.Context, input string, opts extrude.Options) error {
	m, err := c.loadMap(input)
	if err != nil {
		return err
	}
	ctx, _ = c.withRun(ctx, "inspect")
	if err = opts.Validate(); err != nil {
		return err
	}

	sections, origin, vertexMode, err := extrude.Plan(ctx, m, opts)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}

	printTitle(c.Out, "%d section(s), %s selection", len(sections), selectionKind(vertexMode))
	if origin != "" {
		printKeyValue(c.Out, "origin", origin)
	}
	for _, s := range sections {
		ends := s.Pair.A + " " + s.Pair.B
		if s.Pair.Synthesized {
			ends += " (synthesized)"
		}
		printKeyValue(c.Out, fmt.Sprintf("section %d", s.Component.Index),
			fmt.Sprintf("%s, distance %.4g, endpoints %s", s.Model.Mode, s.Model.Distance, ends))
		printDetail(c.Out, "%d vertex(es), %d edge(s)", len(s.Component.Vertices), len(s.Component.Edges))
	}

	return nil
}

func selectionKind(vertexMode bool) string {
	if vertexMode {
		return "vertex"
	}

	return "edge"
}

var _ extrude.Source = (*core.Map)(nil)
