// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges i–(i+1) for i=0..n-2. Paths have no Hamiltonian cycle: both
//     end vertices have degree 1.

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n on vertices 0..n-1.
func Path(n int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return nil, err
		}
		adj := newMatrix(n)
		for i := 0; i+1 < n; i++ {
			link(adj, i, i+1)
		}

		return adj, nil
	}
}
