// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// config.go - builderConfig and its deterministic defaults.
//
// Defaults:
//   - idFn          = DefaultIDFn   ("0","1","2",...)
//   - nameFn        = no names      (every node unnamed)
//   - rng           = nil           (stochastic constructors require WithSeed/WithRand)
//   - weightFn      = DefaultWeightFn
//   - bidirectional = false

package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn          IDFn
	nameFn        func(int) string
	rng           *rand.Rand
	weightFn      WeightFn
	bidirectional bool
}

// newBuilderConfig applies opts over the defaults, last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		nameFn:   func(int) string { return "" },
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
