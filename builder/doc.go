// SPDX-License-Identifier: MIT

// Package builder generates synthetic raw campus maps for tests, benchmarks and
// demos. It follows the functional-options style used across campusnav:
//
//   - Constructor: a function that appends nodes and links to a *mapdata.RawMap.
//   - BuildMap:    the single entry point; resolves options, runs constructors in order.
//   - BuilderOption: mutates builderConfig (seed, id scheme, names, weights, direction).
//
// Topologies:
//
//	Path(n)            – a corridor n₀→n₁→…→nₙ₋₁.
//	Cycle(n)           – a ring walkway.
//	Star(n)            – a hub ("quad") with n-1 spokes.
//	Grid(rows, cols)   – a street grid; every block side is walkable both ways.
//	RandomSparse(n, p) – each ordered pair linked independently with probability p.
//	Connect(u, v, w)   – a single link between two existing external ids.
//
// Composition: each constructor numbers its nodes after those already present,
// so Path(3) followed by Cycle(4) yields two disjoint components with external
// ids "0".."2" and "3".."6" under the default scheme.
//
// Determinism: the same options, seed and constructor order always produce the
// same map, byte for byte once encoded.
package builder
