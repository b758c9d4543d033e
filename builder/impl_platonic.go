// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}
//     (else ErrUnknownVariant).
//   • Edges come from the fixed datasets in variants_platonic.go.
//
// All five solids are Hamiltonian; the dodecahedron is the classic
// icosian-game instance.

package builder

import "fmt"

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the named solid's graph.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return nil, fmt.Errorf("%s: solid %q: %w", methodPlatonicSolid, name, ErrUnknownVariant)
		}
		adj := newMatrix(n)
		for _, e := range platonicEdgeSets[name] {
			link(adj, e[0], e[1])
		}

		return adj, nil
	}
}
