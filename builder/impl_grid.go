// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor and the
// GridBlocks partition helper.
//
// Numbering:
//   • Cell (r,c) is vertex r*cols + c (row-major).
//   • Right edges (r,c)–(r,c+1), then down edges (r,c)–(r+1,c).
//
// A rows×cols grid with rows, cols ≥ 2 is Hamiltonian iff rows*cols is even.

package builder

import "fmt"

const (
	methodGrid       = "Grid"
	methodGridBlocks = "GridBlocks"
	minGridDim       = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return nil, err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return nil, err
		}
		adj := newMatrix(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					link(adj, v, v+1)
				}
				if r+1 < rows {
					link(adj, v, v+cols)
				}
			}
		}

		return adj, nil
	}
}

// GridBlocks tiles a rows×cols grid (numbered as in Grid) with blocks of
// blockRows×blockCols cells and returns the block id of every vertex.
// Blocks are numbered row-major; trailing blocks are truncated when the
// block size does not divide the grid.
func GridBlocks(rows, cols, blockRows, blockCols int) ([]int, error) {
	for _, p := range []struct {
		name string
		val  int
	}{{"rows", rows}, {"cols", cols}, {"blockRows", blockRows}, {"blockCols", blockCols}} {
		if err := validateMin(methodGridBlocks, p.name, p.val, minGridDim); err != nil {
			return nil, err
		}
	}
	if blockRows > rows || blockCols > cols {
		return nil, fmt.Errorf("%s: block %dx%d exceeds grid %dx%d: %w",
			methodGridBlocks, blockRows, blockCols, rows, cols, ErrTooFewVertices)
	}

	perRow := (cols + blockCols - 1) / blockCols
	assign := make([]int, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assign[r*cols+c] = (r/blockRows)*perRow + c/blockCols
		}
	}

	return assign, nil
}
