// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/hamilton/core"
)

// gridMatrix returns the adjacency matrix of a side×side lattice.
func gridMatrix(side int) [][]bool {
	n := side * side
	var edges [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				edges = append(edges, [2]int{v, v + 1})
			}
			if r+1 < side {
				edges = append(edges, [2]int{v, v + side})
			}
		}
	}

	return matrix(n, edges...)
}

// BenchmarkNewFromAdjacency measures construction of a 32×32 grid graph.
func BenchmarkNewFromAdjacency(b *testing.B) {
	adj := gridMatrix(32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.NewFromAdjacency(adj)
	}
}

// BenchmarkSaveRestore measures a checkpoint round trip with a reused buffer.
func BenchmarkSaveRestore(b *testing.B) {
	g, _ := core.NewFromAdjacency(gridMatrix(32))
	var cp core.Checkpoint
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Save(&cp)
		g.Require(i % g.NumEdges())
		_ = g.Restore(&cp)
	}
}
