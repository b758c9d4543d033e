// Package builder validation helpers shared by the constructors.
package builder

import "fmt"

// Parameter bounds shared by several constructors.
const (
	minProbability = 0.0
	maxProbability = 1.0
)

// validateMin ensures got ≥ min, returning
// "<method>: <name>=<got> < min=<min>: builder: parameter too small" otherwise.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < minProbability || p > maxProbability || p != p {
		return fmt.Errorf("%s: p=%g outside [%.1f,%.1f]: %w",
			method, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	return nil
}
