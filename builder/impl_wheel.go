// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): hub 0 plus a rim cycle 1..n-1 of
//     length ≥ 3.
//   • Rim edges i–i+1 for i=1..n-2 and the closing edge (n-1)–1, then
//     spokes 0–i for i=1..n-1.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel W_n with hub vertex 0.
func Wheel(n int) Constructor {
	return func(_ builderConfig) ([][]bool, error) {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return nil, err
		}
		adj := newMatrix(n)
		for i := 1; i < n-1; i++ {
			link(adj, i, i+1)
		}
		link(adj, n-1, 1)
		for i := 1; i < n; i++ {
			link(adj, 0, i)
		}

		return adj, nil
	}
}
