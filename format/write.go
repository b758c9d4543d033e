package format

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCycle writes the cycle's vertices separated by spaces, followed by a
// newline.
func WriteCycle(w io.Writer, cycle []int) error {
	bw := bufio.NewWriter(w)
	for i, v := range cycle {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')

	return errors.Wrap(bw.Flush(), "WriteCycle")
}

// WriteAdjacency writes adj as rows of space-separated 0/1 entries, a form
// ReadAdjacency reads back.
func WriteAdjacency(w io.Writer, adj [][]bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range adj {
		for j, ok := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			if ok {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "WriteAdjacency")
}

// WriteAssignment writes one partition id per line.
func WriteAssignment(w io.Writer, assignment []int) error {
	bw := bufio.NewWriter(w)
	for _, p := range assignment {
		bw.WriteString(strconv.Itoa(p))
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "WriteAssignment")
}

// WriteMETIS writes adj in the METIS graph format: a header "n m" with the
// undirected edge count, then for every vertex its neighbours numbered from 1.
func WriteMETIS(w io.Writer, adj [][]bool) error {
	m := 0
	for i, row := range adj {
		for j := 0; j < i; j++ {
			if row[j] {
				m++
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(adj), m)
	for _, row := range adj {
		first := true
		for j, ok := range row {
			if !ok {
				continue
			}
			if !first {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(j + 1))
			first = false
		}
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "WriteMETIS")
}

// WriteDOT writes an undirected Graphviz graph of adj. Edges of cycle, if
// given, are drawn bold; vertices are grouped into clusters when assignment
// is given.
func WriteDOT(w io.Writer, adj [][]bool, cycle, assignment []int) error {
	n := len(adj)
	onCycle := make(map[[2]int]bool, len(cycle))
	for i := range cycle {
		a, b := cycle[i], cycle[(i+1)%len(cycle)]
		if a < b {
			a, b = b, a
		}
		onCycle[[2]int{a, b}] = true
	}

	bw := bufio.NewWriter(w)
	bw.WriteString("graph hamilton {\n\tnode [shape=circle];\n")
	if len(assignment) == n {
		k := 0
		for _, p := range assignment {
			if p+1 > k {
				k = p + 1
			}
		}
		for p := 0; p < k; p++ {
			fmt.Fprintf(bw, "\tsubgraph cluster_%d {\n\t\tlabel=\"partition %d\";\n", p, p)
			for v, q := range assignment {
				if q == p {
					fmt.Fprintf(bw, "\t\t%d;\n", v)
				}
			}
			bw.WriteString("\t}\n")
		}
	} else {
		for v := 0; v < n; v++ {
			fmt.Fprintf(bw, "\t%d;\n", v)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if !adj[i][j] {
				continue
			}
			if onCycle[[2]int{i, j}] {
				fmt.Fprintf(bw, "\t%d -- %d [penwidth=3];\n", i, j)
			} else {
				fmt.Fprintf(bw, "\t%d -- %d [color=gray];\n", i, j)
			}
		}
	}
	bw.WriteString("}\n")

	return errors.Wrap(bw.Flush(), "WriteDOT")
}

// Permute returns the matrix with rows and columns reordered by cycle:
// entry (i, j) of the result is adj[cycle[i]][cycle[j]].
func Permute(adj [][]bool, cycle []int) ([][]bool, error) {
	n := len(adj)
	if len(cycle) != n {
		return nil, errors.WithMessagef(ErrBadCycle, "Permute: %d vertices for %d", len(cycle), n)
	}
	seen := make([]bool, n)
	for _, v := range cycle {
		if v < 0 || v >= n || seen[v] {
			return nil, errors.WithMessagef(ErrBadCycle, "Permute: vertex %d", v)
		}
		seen[v] = true
	}

	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = adj[cycle[i]][cycle[j]]
		}
	}

	return out, nil
}
