// SPDX-License-Identifier: MIT
// Package allpairs runs the offline precompute: normalize a raw campus map, then
// compute shortest distances from every node, producing the table the serving
// side looks routes up in.
//
// Pipeline:
//
//	raw map ─▶ normalize.Normalize ─▶ dijkstra.NewAdjacency (once)
//	        ─▶ dijkstra.ShortestPaths for sources 1..N ─▶ Result
//
// Guarantees:
//
//   - A normalization failure aborts before any shortest-path work.
//   - A failed source is never replaced by an empty table: by default the first
//     failure aborts the run; WithCollectErrors reports every failed source.
//   - Sequential and parallel runs produce identical results. Each source writes
//     its own slot and the adjacency is shared read-only.
//   - MethodFloydWarshall yields the same observable table for small dense maps.
//
// Errors:
//
//	ErrUnknownLocation   - a name or id that is not in the result.
//	ErrAmbiguousLocation - a name carried by several nodes.
//	ErrRouteUnavailable  - the target is unreachable from the source.
//	ErrPathsNotRetained  - Route called on a result computed without WithPaths.
//	ErrUnsupportedMethod - unknown method name, or WithPaths with Floyd–Warshall.
//	ErrInconsistentTable - Verify found a table violating a shortest-path property.
package allpairs

import (
	"errors"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/normalize"
)

// Sentinel errors for the pipeline and lookups.
var (
	// ErrUnknownLocation indicates a name or node id absent from the result.
	ErrUnknownLocation = errors.New("allpairs: unknown location")

	// ErrAmbiguousLocation indicates a name shared by more than one node.
	ErrAmbiguousLocation = errors.New("allpairs: ambiguous location name")

	// ErrRouteUnavailable indicates no directed path between two locations.
	ErrRouteUnavailable = errors.New("allpairs: route unavailable")

	// ErrPathsNotRetained indicates predecessor trees were not kept.
	ErrPathsNotRetained = errors.New("allpairs: paths not retained")

	// ErrUnsupportedMethod indicates an unknown method or an unsupported combination.
	ErrUnsupportedMethod = errors.New("allpairs: unsupported method")

	// ErrInconsistentTable indicates a table that violates a shortest-path property.
	ErrInconsistentTable = errors.New("allpairs: inconsistent distance table")
)

// Table maps a source node id to its distance table.
type Table map[int]dijkstra.Distances

// Result is the precompute product handed to the serving side.
type Result struct {
	// Nodes[i] is the node with dense id i+1.
	Nodes []normalize.Node

	// Edges is the normalized edge list, for consumers that draw the graph.
	Edges []dijkstra.Edge

	// Labels is the last-write-wins name index.
	Labels normalize.NameIndex

	// Groups lists every id per name, for ambiguity checks.
	Groups normalize.NameGroups

	// ShortestPaths[s][t] is the minimum distance from s to t; t absent if unreachable.
	ShortestPaths Table

	// Predecessors[s] is the shortest-path tree rooted at s. Nil unless WithPaths.
	Predecessors map[int]map[int]int
}

// NodeCount returns the number of nodes in the result.
func (r *Result) NodeCount() int { return len(r.Nodes) }

// Pairs returns the number of reachable (source, target) pairs, self pairs included.
func (r *Result) Pairs() int {
	total := 0
	for _, d := range r.ShortestPaths {
		total += len(d)
	}

	return total
}
