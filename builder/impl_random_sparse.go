// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: for each i asc, j asc with j>i. Fixed seed ⇒ fixed matrix.

package builder

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) ([][]bool, error) {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return nil, err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return nil, err
		}
		if cfg.rng == nil && p > minProbability && p < maxProbability {
			return nil, builderErrorf(methodRandomSparse, ErrNeedRandSource)
		}

		adj := newMatrix(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == maxProbability:
					link(adj, i, j)
				case p == minProbability:
				case cfg.rng.Float64() < p:
					link(adj, i, j)
				}
			}
		}

		return adj, nil
	}
}
