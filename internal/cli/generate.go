package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hamilton/builder"
	"github.com/katalvlaran/hamilton/format"
)

// generator turns positional arguments into a builder constructor.
type generator struct {
	params []string
	build  func(args []string) (builder.Constructor, error)
}

func sized(fn func(n int) builder.Constructor) generator {
	return generator{params: []string{"n"}, build: func(args []string) (builder.Constructor, error) {
		n, err := atoi("n", args[0])
		if err != nil {
			return nil, err
		}
		return fn(n), nil
	}}
}

func paired(a, b string, fn func(x, y int) builder.Constructor) generator {
	return generator{params: []string{a, b}, build: func(args []string) (builder.Constructor, error) {
		x, err := atoi(a, args[0])
		if err != nil {
			return nil, err
		}
		y, err := atoi(b, args[1])
		if err != nil {
			return nil, err
		}
		return fn(x, y), nil
	}}
}

var generators = map[string]generator{
	"cycle":          sized(builder.Cycle),
	"path":           sized(builder.Path),
	"complete":       sized(builder.Complete),
	"wheel":          sized(builder.Wheel),
	"star":           sized(builder.Star),
	"bipartite":      paired("n1", "n2", builder.CompleteBipartite),
	"grid":           paired("rows", "cols", builder.Grid),
	"random-regular": paired("n", "d", builder.RandomRegular),
	"petersen": {build: func([]string) (builder.Constructor, error) {
		return builder.Petersen(), nil
	}},
	"random": {params: []string{"n", "p"}, build: func(args []string) (builder.Constructor, error) {
		n, err := atoi("n", args[0])
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("p: %w", err)
		}
		return builder.RandomSparse(n, p), nil
	}},
	"platonic": {params: []string{"solid"}, build: func(args []string) (builder.Constructor, error) {
		name, ok := builder.ParsePlatonicName(args[0])
		if !ok {
			return nil, fmt.Errorf("solid %q: %w", args[0], builder.ErrUnknownVariant)
		}
		return builder.PlatonicSolid(name), nil
	}},
}

func atoi(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

func (g generator) usage(kind string) string {
	parts := []string{kind}
	for _, p := range g.params {
		parts = append(parts, "<"+p+">")
	}

	return strings.Join(parts, " ")
}

func generatorUsage() string {
	lines := make([]string, 0, len(generators))
	for kind, g := range generators {
		lines = append(lines, "  "+g.usage(kind))
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}

type generateInput struct {
	seed         int64
	partitionOut string
	blockRows    int
	blockCols    int
}

func newGenerateCommand(stdout io.Writer) *cobra.Command {
	input := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate <kind> [args...]",
		Short: "Write the adjacency matrix of a standard graph family",
		Long: "Write the adjacency matrix of a standard graph family. Kinds:\n" + generatorUsage() +
			"\nPlatonic solids: tetrahedron, cube, octahedron, dodecahedron, icosahedron.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(stdout, input, args)
		},
	}
	cmd.Flags().Int64Var(&input.seed, "seed", 1, "seed for the random kinds")
	cmd.Flags().StringVar(&input.partitionOut, "partition-out", "", "grid only: write a block partition file here")
	cmd.Flags().IntVar(&input.blockRows, "block-rows", 2, "grid only: rows per partition block")
	cmd.Flags().IntVar(&input.blockCols, "block-cols", 2, "grid only: columns per partition block")

	return cmd
}

func runGenerate(stdout io.Writer, input *generateInput, args []string) error {
	kind, params := args[0], args[1:]
	gen, ok := generators[kind]
	if !ok {
		return fmt.Errorf("generate %q: %w", kind, builder.ErrUnknownVariant)
	}
	if len(params) != len(gen.params) {
		return fmt.Errorf("usage: generate %s", gen.usage(kind))
	}

	con, err := gen.build(params)
	if err != nil {
		return fmt.Errorf("generate %s: %w", kind, err)
	}
	adj, err := builder.Build(con, builder.WithSeed(input.seed))
	if err != nil {
		return err
	}

	if input.partitionOut != "" {
		if kind != "grid" {
			return fmt.Errorf("generate %s: --partition-out needs a grid", kind)
		}
		rows, _ := strconv.Atoi(params[0])
		cols, _ := strconv.Atoi(params[1])
		if err := writeGridBlocks(input, rows, cols); err != nil {
			return err
		}
	}

	return format.WriteAdjacency(stdout, adj)
}

func writeGridBlocks(input *generateInput, rows, cols int) error {
	assignment, err := builder.GridBlocks(rows, cols, input.blockRows, input.blockCols)
	if err != nil {
		return err
	}
	f, err := os.Create(input.partitionOut)
	if err != nil {
		return err
	}
	if err := format.WriteAssignment(f, assignment); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
