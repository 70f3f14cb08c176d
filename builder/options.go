// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// options.go - functional options.
//
// Option constructors panic on meaningless input (nil functions); the
// constructors themselves never panic and return sentinel errors instead.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the external id generator: global node index → id.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithNameFn sets the display name generator. Returning "" leaves a node unnamed.
func WithNameFn(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNameFn(nil)")
	}
	return func(c *builderConfig) { c.nameFn = fn }
}

// WithRand provides an explicit RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so stochastic maps are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-link distance generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithBidirectional makes Path, Cycle, Star and RandomSparse emit each link in
// both directions. Grid is always two-way.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}
