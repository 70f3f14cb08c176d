// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// errors.go - sentinel errors. Constructors wrap them with their method name:
//
//	Grid: rows=0, cols=3 (each must be ≥ 1): builder: parameter too small
//
// Callers branch with errors.Is, never on the message.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed: a nil
// constructor, or Connect naming an id that is not in the map.
var ErrConstructFailed = errors.New("builder: construction failed")
