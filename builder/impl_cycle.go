// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges i–(i+1)%n for i=0..n-1; the ring 0,1,…,n-1 is its only
//     Hamiltonian cycle.
//
// Complexity: O(n²) for the matrix, O(n) edges.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return nil, err
		}
		adj := newMatrix(n)
		for i := 0; i < n; i++ {
			link(adj, i, (i+1)%n)
		}

		return adj, nil
	}
}
