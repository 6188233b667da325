package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linework/distribute"
)

// distributeCommand creates the distribute command.
func (c *CLI) distributeCommand() *cobra.Command {
	var (
		out   outputFlags
		flags distributeFlags
	)

	cmd := &cobra.Command{
		Use:   "distribute [map.json]",
		Short: "Place evenly spaced markers along the selected edges",
		Long: `Place markers at evenly spaced arc-length positions along the selected edges.

The total length of every selected edge is split into --count equal slots and
one marker is placed in the middle of each slot. Disconnected selections are
walked one after the other, so spacing is global rather than per chain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.options(cmd.Flags(), c.config.Distribute)
			return c.runDistribute(cmd.Context(), args[0], out, opts)
		},
	}

	out.register(cmd.Flags())
	flags.register(cmd.Flags())

	return cmd
}

func (c *CLI) runDistribute(ctx context.Context, input string, out outputFlags, opts []distribute.Option) error {
	m, err := c.loadMap(input)
	if err != nil {
		return err
	}

	ctx, logger := c.withRun(ctx, "distribute")
	prog := newProgress(logger)
	res, err := distribute.Distribute(ctx, m, opts...)
	if err != nil {
		return fmt.Errorf("distribute %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Placed %d marker(s)", len(res.Markers)))

	paths, err := out.write(ctx, m, input, "distributed")
	if err != nil {
		return err
	}

	printSuccess(c.Out, "%s", res.Summary())
	printKeyValue(c.Out, "length", fmt.Sprintf("%.4g", res.TotalLength))
	printKeyValue(c.Out, "markers", fmt.Sprint(len(res.Markers)))
	for _, p := range paths {
		printFile(c.Out, p)
	}

	return nil
}
