package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/format"
	"github.com/katalvlaran/hamilton/internal/telemetry"
)

func newPermuteCommand(ctx context.Context, input *Input, stdout io.Writer) *cobra.Command {
	var dot bool
	cmd := &cobra.Command{
		Use:   "permute <graph-file> [partition-file]",
		Short: "Solve the graph and write its matrix reordered along the cycle",
		Long: "Solve the graph and write its adjacency matrix with rows and columns in cycle order, " +
			"so the cycle lies on the first super- and sub-diagonal. With --dot the graph is written " +
			"in Graphviz DOT form with the cycle highlighted instead.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := input.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := input.newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			sol, err := solveFiles(telemetry.WithLogger(ctx, log), cfg, args)
			if err != nil {
				return err
			}

			if dot {
				var assignment []int
				if len(args) > 1 {
					if assignment, err = format.LoadAssignment(args[1], len(sol.adj)); err != nil {
						return err
					}
				}
				return format.WriteDOT(stdout, sol.adj, sol.cycle, assignment)
			}

			permuted, err := format.Permute(sol.adj, sol.cycle)
			if err != nil {
				return err
			}

			return format.WriteAdjacency(stdout, permuted)
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of a matrix")

	return cmd
}
