// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_bipartite.go — implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left part is 0..n1-1, right part is n1..n1+n2-1; every left–right pair
//     is an edge. K_{a,b} is Hamiltonian iff a = b ≥ 2.

package builder

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodCompleteBipartite, "n1", n1, minPartitionSize); err != nil {
			return nil, err
		}
		if err := validateMin(methodCompleteBipartite, "n2", n2, minPartitionSize); err != nil {
			return nil, err
		}
		adj := newMatrix(n1 + n2)
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				link(adj, i, j)
			}
		}

		return adj, nil
	}
}
