package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/core"
	"github.com/katalvlaran/hamilton/format"
)

func newMetisCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "metis <graph-file>",
		Short: "Convert an adjacency matrix to the METIS graph format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adj, err := format.LoadAdjacency(args[0])
			if err != nil {
				return err
			}
			if _, err := core.NewFromAdjacency(adj); err != nil {
				return err
			}

			return format.WriteMETIS(stdout, adj)
		},
	}
}
