// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, prefixed by the method name.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, block
// dimensions) is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed/WithRand) while its outcome depends on random draws.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the method tag.
func builderErrorf(method string, sentinel error) error {
	return fmt.Errorf("%s: %w", method, sentinel)
}

// ErrUnknownVariant indicates a named variant (e.g. a Platonic solid) that
// the package does not define.
var ErrUnknownVariant = errors.New("builder: unknown variant")
