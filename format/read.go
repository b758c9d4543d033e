package format

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ReadAdjacency parses a graph file. Symmetry and the diagonal are not
// checked here; core.NewFromAdjacency validates them.
func ReadAdjacency(r io.Reader) ([][]bool, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "ReadAdjacency")
	}

	n := 0
	for _, c := range data {
		if c == '\n' {
			break
		}
		if c == '0' || c == '1' {
			n++
		}
	}
	if n == 0 {
		return nil, errors.WithMessage(ErrEmptyMatrix, "ReadAdjacency")
	}

	digits := 0
	for _, c := range data {
		if c == '0' || c == '1' {
			digits++
		}
	}
	// n ≤ digits/n is n² ≤ digits without overflow
	if n > digits/n {
		return nil, errors.WithMessagef(ErrTruncatedMatrix, "ReadAdjacency: %d digits for n=%d", digits, n)
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	k := 0
	for _, c := range data {
		if k == n*n {
			break
		}
		if c != '0' && c != '1' {
			continue
		}
		adj[k/n][k%n] = c == '1'
		k++
	}

	return adj, nil
}

// ReadAssignment parses a partition file for n vertices. Surrounding
// whitespace is trimmed and trailing blank lines are ignored. Ids must lie
// in [0, n).
func ReadAssignment(r io.Reader, n int) ([]int, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "ReadAssignment")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != n {
		return nil, errors.WithMessagef(ErrAssignmentLength, "ReadAssignment: %d lines for %d vertices", len(lines), n)
	}

	out := make([]int, n)
	for i, line := range lines {
		p, err := strconv.Atoi(line)
		if err != nil || p < 0 || p >= n {
			return nil, errors.WithMessagef(ErrBadPartitionID, "ReadAssignment: line %d %q", i+1, line)
		}
		out[i] = p
	}

	return out, nil
}

// LoadAdjacency reads a graph file from path.
func LoadAdjacency(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read graph file %s", path)
	}
	defer f.Close()

	adj, err := ReadAdjacency(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "graph file %s", path)
	}

	return adj, nil
}

// LoadAssignment reads a partition file for n vertices from path.
func LoadAssignment(path string, n int) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read partition file %s", path)
	}
	defer f.Close()

	assignment, err := ReadAssignment(f, n)
	if err != nil {
		return nil, errors.WithMessagef(err, "partition file %s", path)
	}

	return assignment, nil
}
