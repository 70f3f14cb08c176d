// SPDX-License-Identifier: MIT
// Package: campusnav/dijkstra
//
// adjacency.go - read-only out-lists built once from a normalized edge list.
//
// Contract:
//   - Slot 0 is unused; slots 1..n hold the outgoing arcs of each node in edge order.
//   - All validation happens here (range, negative/NaN weights), so the hot loop
//     in ShortestPaths never re-checks edges.
//   - Edges with weight +Inf are impassable and are not stored.
//   - After NewAdjacency returns, the value is never mutated: safe for concurrent readers.

package dijkstra

import (
	"fmt"
	"math"
)

// arc is one outgoing (neighbor, weight) pair.
type arc struct {
	to     int
	weight float64
}

// Adjacency is the immutable adjacency structure shared by all runs on a graph.
type Adjacency struct {
	n    int
	arcs int
	out  [][]arc
}

// NewAdjacency validates edges against nodeCount and builds the out-lists.
//
// Errors:
//   - ErrInvalidNodeCount if nodeCount < 0.
//   - ErrEdgeOutOfRange if any endpoint lies outside [1, nodeCount].
//   - ErrNegativeWeight if any weight is negative or NaN.
//
// Complexity: O(V + E).
func NewAdjacency(nodeCount int, edges []Edge) (*Adjacency, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: nodeCount=%d", ErrInvalidNodeCount, nodeCount)
	}

	adj := &Adjacency{
		n:   nodeCount,
		out: make([][]arc, nodeCount+1),
	}

	for i, e := range edges {
		if e.From < 1 || e.From > nodeCount || e.To < 1 || e.To > nodeCount {
			return nil, fmt.Errorf("%w: edge #%d %d→%d (nodeCount=%d)",
				ErrEdgeOutOfRange, i, e.From, e.To, nodeCount)
		}
		// !(w >= 0) also catches NaN.
		if !(e.Weight >= 0) {
			return nil, fmt.Errorf("%w: edge #%d %d→%d weight=%g",
				ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
		if math.IsInf(e.Weight, 1) {
			continue
		}
		adj.out[e.From] = append(adj.out[e.From], arc{to: e.To, weight: e.Weight})
		adj.arcs++
	}

	return adj, nil
}

// NodeCount returns the number of nodes the adjacency was built for.
func (a *Adjacency) NodeCount() int { return a.n }

// ArcCount returns the number of stored (passable) arcs.
func (a *Adjacency) ArcCount() int { return a.arcs }

// OutDegree returns the number of stored arcs leaving u, or 0 if u is out of range.
func (a *Adjacency) OutDegree(u int) int {
	if u < 1 || u > a.n {
		return 0
	}

	return len(a.out[u])
}
