// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_petersen.go — implementation of Petersen() constructor.
//
// Numbering:
//   • Outer 5-cycle 0..4 (i–(i+1)%5).
//   • Spokes i–(i+5).
//   • Inner pentagram 5..9 (5+i – 5+(i+2)%5).
//
// The Petersen graph is 3-regular, 3-connected and not Hamiltonian.

package builder

const (
	methodPetersen = "Petersen"
	petersenRing   = 5
)

// Petersen returns a Constructor that builds the 10-vertex Petersen graph.
func Petersen() Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		adj := newMatrix(2 * petersenRing)
		for i := 0; i < petersenRing; i++ {
			link(adj, i, (i+1)%petersenRing)
			link(adj, i, i+petersenRing)
			link(adj, petersenRing+i, petersenRing+(i+2)%petersenRing)
		}

		return adj, nil
	}
}
