// SPDX-License-Identifier: MIT
// Package: campusnav/dijkstra
//
// types.go - sentinel errors, Edge/Distances/Result, and functional options.
//
// Complexity of a run:
//
//	– Time:  O((V + E) log V)   where V = nodeCount, E = |edges|
//	   • Each node is finalized at most once (V finalizations).
//	   • Each relaxation pushes one heap entry (up to E pushes, lazy decrease-key).
//	– Space: O(V + E)
//
// Options:
//
//	– ReturnPath:  record the predecessor of every finalized node.
//	– MaxDistance: stop finalizing once the closest pending node is farther than this.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidNodeCount indicates a negative node count.
	ErrInvalidNodeCount = errors.New("dijkstra: node count must be non-negative")

	// ErrInvalidSource indicates a source outside [1, nodeCount]; an empty graph has no valid source.
	ErrInvalidSource = errors.New("dijkstra: source outside [1, nodeCount]")

	// ErrEdgeOutOfRange indicates an edge endpoint outside [1, nodeCount].
	ErrEdgeOutOfRange = errors.New("dijkstra: edge endpoint outside [1, nodeCount]")

	// ErrNegativeWeight indicates a negative (or NaN) edge weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNilAdjacency indicates a nil *Adjacency was passed to ShortestPaths.
	ErrNilAdjacency = errors.New("dijkstra: adjacency is nil")

	// ErrBadMaxDistance indicates MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates the target is not reachable in a predecessor tree.
	ErrNoPath = errors.New("dijkstra: target not reachable from source")
)

// Edge is a directed, weighted edge between two dense node ids.
type Edge struct {
	From   int     // source node id in [1, nodeCount]
	To     int     // target node id in [1, nodeCount]
	Weight float64 // non-negative cost
}

// Distances maps each reachable node id to its minimum distance from the source.
// Unreachable nodes are absent; the source itself is present with 0.
type Distances map[int]float64

// Result is the outcome of one single-source run.
type Result struct {
	Source int       // the source node id
	Dist   Distances // finalized distances

	// Prev[v] == u means the shortest path to v ends with u→v.
	// Nil unless WithReturnPath was given; the source has no entry.
	Prev map[int]int
}

// Options configures one ShortestPaths run.
//
// ReturnPath  – if true, Result.Prev is populated.
// MaxDistance – nodes farther than this are left unreached. Default +Inf.
type Options struct {
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithReturnPath enables predecessor recording.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration: nodes whose distance would exceed max are
// absent from the result. Panics on a negative or NaN cap.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Invalid configuration is a programming error, surfaced early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}
