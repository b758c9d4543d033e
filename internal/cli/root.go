package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/search"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitFatal   = 1
	ExitNoCycle = 2
)

// Input holds the root command flags.
type Input struct {
	configPath  string
	start       int
	timeLimit   string
	output      string
	verify      bool
	verbose     bool
	logFormat   string
	metricsFile string
}

// Execute runs the command line with os.Args and returns the process exit code.
func Execute(ctx context.Context, version string) int {
	return run(ctx, version, os.Args[1:], os.Stdout, os.Stderr)
}

func run(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCommand(ctx, version, stdout)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, search.ErrNoCycle):
		fmt.Fprintln(stderr, "no Hamiltonian cycle exists")
		return ExitNoCycle
	default:
		fmt.Fprintf(stderr, "hamcycle: %v\n", err)
		return ExitFatal
	}
}

func newRootCommand(ctx context.Context, version string, stdout io.Writer) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:           "hamcycle <graph-file> [partition-file]",
		Short:         "Find a Hamiltonian cycle in an undirected graph given as an adjacency matrix.",
		Args:          cobra.RangeArgs(1, 2),
		RunE:          newSolveAction(ctx, input, stdout),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().IntVarP(&input.start, "start", "s", 0, "start vertex of the cycle")
	rootCmd.PersistentFlags().StringVar(&input.timeLimit, "time-limit", "", "abort the search after this duration (e.g. 30s)")
	rootCmd.Flags().StringVarP(&input.output, "output", "o", "plain", "output format: plain, json or yaml")
	rootCmd.Flags().BoolVar(&input.verify, "verify", true, "verify the cycle against the input graph before printing")
	rootCmd.Flags().StringVar(&input.metricsFile, "metrics-file", "", "write search metrics in Prometheus text format to this file")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.logFormat, "log-format", "text", "log format: text or json")

	rootCmd.AddCommand(
		newGenerateCommand(stdout),
		newMetisCommand(stdout),
		newPermuteCommand(ctx, input, stdout),
	)

	return rootCmd
}
