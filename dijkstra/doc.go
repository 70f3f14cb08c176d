// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest distances over a static,
// directed campus graph whose nodes are the dense integers 1..nodeCount.
//
// Overview:
//
//   - NewAdjacency validates a normalized edge list once and builds read-only
//     out-lists; the result can be shared by any number of concurrent runs.
//   - ShortestPaths expands the next-closest node from a binary min-heap,
//     finalizing each node exactly once, in O((V + E) log V).
//   - ShortestPath is the one-shot form: (nodeCount, edges, source) → Distances.
//
// Result shape:
//
//   - Distances holds only reachable nodes. The source is always present with 0.
//     An unreachable node is absent rather than present with an infinite value.
//   - With WithReturnPath, Result.Prev holds one shortest-path predecessor per
//     finalized node (the source excluded) and PathTo rebuilds node sequences.
//
// Edge semantics:
//
//   - Edges are directed. A two-way walkway must appear as two edges.
//   - Parallel edges and self-loops are allowed; the minimum wins naturally
//     because a node is finalized at its first (smallest) pop.
//   - Zero weights are allowed. +Inf weights mark impassable edges and are dropped.
//   - Negative or NaN weights are rejected up front with ErrNegativeWeight; the
//     algorithm's guarantee does not hold for them.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidNodeCount, ErrEdgeOutOfRange, ErrNegativeWeight from NewAdjacency.
//   - ErrNilAdjacency, ErrInvalidSource from ShortestPaths.
//   - ErrInvalidSource from ShortestPath when nodeCount is 0.
//   - ErrNoPath from PathTo.
//   - ctx.Err() when a run is cancelled.
//
// Thread safety:
//
//   - An *Adjacency is immutable after construction.
//   - Every run owns its heap, distance table and predecessor map, so runs on
//     different sources can execute in parallel without locks.
package dijkstra
