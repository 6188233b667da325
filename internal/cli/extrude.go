package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linework/extrude"
)

// extrudeCommand creates the extrude command.
func (c *CLI) extrudeCommand() *cobra.Command {
	var (
		out   outputFlags
		flags extrudeFlags
	)

	cmd := &cobra.Command{
		Use:   "extrude [map.json]",
		Short: "Extrude the selected sections",
		Long: `Extrude every connected section of the selection.

A section is moved (or, with --copy, duplicated and stitched) along the normal
of the line through its two endpoints. --angle rotates that direction.
--arc-angle bends the section around the circle through its endpoints, and
--radial uses an isolated selected vertex as the centre instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd.Flags(), c.config.Extrude)
			return c.runExtrude(cmd.Context(), args[0], out, opts)
		},
	}

	out.register(cmd.Flags())
	flags.register(cmd.Flags())

	return cmd
}

func (c *CLI) runExtrude(ctx context.Context, input string, out outputFlags, opts extrude.Options) error {
	m, err := c.loadMap(input)
	if err != nil {
		return err
	}

	ctx, logger := c.withRun(ctx, "extrude")
	prog := newProgress(logger)
	res, err := extrude.Extrude(ctx, m, apply(opts)...)
	if err != nil {
		return fmt.Errorf("extrude %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Extruded %d section(s)", res.Sections))

	paths, err := out.write(ctx, m, input, "extruded")
	if err != nil {
		return err
	}

	printSuccess(c.Out, "%s", res.Summary())
	if res.Origin != "" {
		printKeyValue(c.Out, "origin", res.Origin)
	}
	for i, mod := range res.Models {
		printKeyValue(c.Out, fmt.Sprintf("section %d", i), fmt.Sprintf("%s %.4g", mod.Mode, mod.Distance))
	}
	for _, p := range paths {
		printFile(c.Out, p)
	}

	return nil
}
