package core

import "fmt"

// VerifyCycle checks that cycle is a Hamiltonian cycle of g's topology:
// a permutation of 0..n-1 in which every consecutive pair, including the
// wraparound from the last vertex to the first, is joined by an edge.
// Edge status is not consulted.
//
// Complexity: O(n·Δ) time, O(n) space.
func (g *Graph) VerifyCycle(cycle []int) error {
	n := len(g.vertices)
	if len(cycle) != n {
		return fmt.Errorf("VerifyCycle: length %d, want %d: %w", len(cycle), n, ErrNotPermutation)
	}
	seen := make([]bool, n)
	for _, v := range cycle {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("VerifyCycle: vertex %d: %w", v, ErrNotPermutation)
		}
		seen[v] = true
	}
	for i := 0; i < n; i++ {
		u, v := cycle[i], cycle[(i+1)%n]
		if _, ok := g.EdgeBetween(u, v); !ok {
			return fmt.Errorf("VerifyCycle: %d-%d: %w", u, v, ErrMissingEdge)
		}
	}

	return nil
}
