// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Every unordered pair {i,j}, i≠j, is an edge. K_n is Hamiltonian for n ≥ 3.
//
// Complexity: O(n²).

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return nil, err
		}
		adj := newMatrix(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(adj, i, j)
			}
		}

		return adj, nil
	}
}
