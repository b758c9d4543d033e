package core

import "fmt"

const methodNewCoarse = "NewCoarse"

// NewCoarse derives the partition graph of g: vertex p of the result stands
// for partition p, and partitions p != q are adjacent iff some edge of g
// joins a vertex of p to a vertex of q. Edge status of g is ignored and the
// result shares no state with g.
//
// assignment[v] is the partition of vertex v and must lie in [0, k).
//
// Complexity: O(k² + m) time and space.
func NewCoarse(g *Graph, assignment []int, k int) (*Graph, error) {
	if len(assignment) != g.N() {
		return nil, fmt.Errorf("%s: %d assignments for %d vertices: %w",
			methodNewCoarse, len(assignment), g.N(), ErrVertexOutOfRange)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%s: k=%d: %w", methodNewCoarse, k, ErrEmptyMatrix)
	}
	for v, p := range assignment {
		if p < 0 || p >= k {
			return nil, fmt.Errorf("%s: vertex %d in partition %d, want [0,%d): %w",
				methodNewCoarse, v, p, k, ErrVertexOutOfRange)
		}
	}

	adj := make([][]bool, k)
	for p := range adj {
		adj[p] = make([]bool, k)
	}
	for _, e := range g.edges {
		p, q := assignment[e.U], assignment[e.V]
		if p != q {
			adj[p][q] = true
			adj[q][p] = true
		}
	}

	return NewFromAdjacency(adj)
}
