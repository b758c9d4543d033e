// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Model:
//   • d-regular simple graph via stub matching with bounded retries: each
//     vertex contributes d stubs, stubs are shuffled and paired, and a pairing
//     with a loop or a repeated pair is rejected and reshuffled.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n*d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Random 3-regular graphs are Hamiltonian with high probability, which makes
// them a good stress input for the search.

package builder

import "fmt"

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 64
)

// RandomRegular returns a Constructor that samples a d-regular graph on n vertices.
func RandomRegular(n, d int) Constructor {
	return func(cfg builderConfig) ([][]bool, error) {
		if err := validateMin(methodRandomRegular, "n", n, minRRVertices); err != nil {
			return nil, err
		}
		if d < 0 || d >= n {
			return nil, fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return nil, fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return nil, builderErrorf(methodRandomRegular, ErrNeedRandSource)
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			adj := newMatrix(n)
			valid := true
			for i := 0; i < len(stubs); i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v || adj[u][v] {
					valid = false
					break
				}
				link(adj, u, v)
			}
			if valid {
				return adj, nil
			}
		}

		return nil, fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
