// SPDX-License-Identifier: MIT
// Package: hamilton/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig applies opts in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
