// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// api.go - thin public entry point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   - Factories live in impl_*.go; each returns a Constructor closure.
//   - Determinism: same inputs/options/seed ⇒ identical matrices.
//   - Safety: never panic at build time; return sentinel errors.

package builder

import "fmt"

// Constructor produces an adjacency matrix using the resolved builderConfig.
// Constructors MUST validate parameters before allocating and return only
// wrapped sentinel errors.
type Constructor func(cfg builderConfig) ([][]bool, error)

// Build resolves the builder configuration from opts and runs con.
// A nil constructor yields ErrConstructFailed.
//
// Complexity: O(len(opts)) plus the cost of con.
func Build(con Constructor, opts ...BuilderOption) ([][]bool, error) {
	if con == nil {
		return nil, fmt.Errorf("Build: nil constructor: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)
	adj, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return adj, nil
}

// newMatrix allocates an n×n all-false matrix.
func newMatrix(n int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	return adj
}

// link sets both symmetric entries for the undirected edge {u,v}.
func link(adj [][]bool, u, v int) {
	adj[u][v] = true
	adj[v][u] = true
}
