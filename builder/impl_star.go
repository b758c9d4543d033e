// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_star.go — implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Center 0 joined to each leaf 1..n-1. Stars are trees and never
//     Hamiltonian; they exercise the degree-bound checks.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds the star S_n with center 0.
func Star(n int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return nil, err
		}
		adj := newMatrix(n)
		for i := 1; i < n; i++ {
			link(adj, 0, i)
		}

		return adj, nil
	}
}
