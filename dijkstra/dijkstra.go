// SPDX-License-Identifier: MIT
// Package: campusnav/dijkstra
//
// dijkstra.go - single-source shortest distances with a binary min-heap.
//
// Notes on implementation choices:
//
//   - Edges are validated once in NewAdjacency; the main loop trusts them.
//   - We use a "lazy" decrease-key strategy: every relaxation of a not-yet-finalized
//     neighbor pushes a heap entry, and stale entries are discarded when popped.
//   - A node is finalized exactly once, at the first pop; parallel edges and
//     self-loops therefore need no special casing.
//   - Cancellation is checked once per pop, so a single pathological source can be
//     abandoned without affecting runs on other sources.

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
)

// ShortestPath computes the minimum distance from source to every node reachable
// from it over edges, for a graph with nodes 1..nodeCount.
//
// Returns:
//
//   - Distances containing the source (0) and every reachable node; unreachable
//     nodes are absent.
//   - ErrInvalidSource if nodeCount is 0 or source lies outside [1, nodeCount].
//   - Any NewAdjacency error for malformed edges.
//
// Callers running many sources over the same graph should build the Adjacency
// once with NewAdjacency and call ShortestPaths directly.
func ShortestPath(nodeCount int, edges []Edge, source int) (Distances, error) {
	if nodeCount <= 0 || source < 1 || source > nodeCount {
		return nil, fmt.Errorf("%w: source=%d nodeCount=%d", ErrInvalidSource, source, nodeCount)
	}

	adj, err := NewAdjacency(nodeCount, edges)
	if err != nil {
		return nil, err
	}

	res, err := ShortestPaths(context.Background(), adj, source)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// ShortestPaths runs Dijkstra from source over a prebuilt adjacency.
//
// Preconditions and validation (in order):
//  1. adj must be non-nil (ErrNilAdjacency).
//  2. source must lie in [1, adj.NodeCount()] (ErrInvalidSource).
//
// The run stops early with ctx.Err() if ctx is cancelled. A nil ctx is treated
// as context.Background().
func ShortestPaths(ctx context.Context, adj *Adjacency, source int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	if source < 1 || source > adj.n {
		return nil, fmt.Errorf("%w: source=%d nodeCount=%d", ErrInvalidSource, source, adj.n)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		adj:     adj,
		options: cfg,
		ctx:     ctx,
		source:  source,
		dist:    make(Distances),
		pq:      make(nodePQ, 0, adj.n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int)
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single execution. Nothing in it is shared
// with other runs; only adj is, and adj is read-only.
type runner struct {
	adj     *Adjacency
	options Options
	ctx     context.Context
	source  int
	dist    Distances   // finalized distances only
	prev    map[int]int // nil unless ReturnPath
	pq      nodePQ
}

// init seeds the heap with (0, source).
func (r *runner) init() {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.source, from: 0, dist: 0})
}

// process pops entries in ascending distance order until the heap is empty,
// the distance cap is passed, or the context is cancelled.
func (r *runner) process() error {
	maxDist := r.options.MaxDistance
	for r.pq.Len() > 0 {
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: the node was finalized by an earlier, shorter pop.
		if _, done := r.dist[item.id]; done {
			continue
		}

		// Everything left in the heap is at least this far.
		if item.dist > maxDist {
			break
		}

		r.dist[item.id] = item.dist
		if r.prev != nil && item.id != r.source {
			r.prev[item.id] = item.from
		}

		r.relax(item)
	}

	return nil
}

// relax pushes every not-yet-finalized neighbor of item.id unconditionally.
func (r *runner) relax(item *nodeItem) {
	for _, a := range r.adj.out[item.id] {
		if _, done := r.dist[a.to]; done {
			continue
		}
		nd := item.dist + a.weight
		if nd > r.options.MaxDistance {
			continue
		}
		heap.Push(&r.pq, &nodeItem{id: a.to, from: item.id, dist: nd})
	}
}

// nodeItem is a heap entry: a candidate distance for id, reached from from.
type nodeItem struct {
	id   int
	from int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Ties are broken
// arbitrarily; finalized distances do not depend on the tie order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
