// Package dijkstra_test contains unit tests for the shortest-path engine.
// These tests validate input checks, the result shape (reachable nodes only),
// parallel edges, self-loops, zero weights, distance caps, cancellation, and
// optimality against brute-force path enumeration on small random graphs.
package dijkstra_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestShortestPath_ZeroNodeCount(t *testing.T) {
	_, err := dijkstra.ShortestPath(0, nil, 1)
	require.ErrorIs(t, err, dijkstra.ErrInvalidSource)
}

func TestShortestPath_SourceOutOfRange(t *testing.T) {
	edges := []dijkstra.Edge{{From: 1, To: 2, Weight: 1}}
	for _, src := range []int{0, -1, 3} {
		_, err := dijkstra.ShortestPath(2, edges, src)
		assert.ErrorIs(t, err, dijkstra.ErrInvalidSource, "source=%d", src)
	}
}

func TestNewAdjacency_NegativeNodeCount(t *testing.T) {
	_, err := dijkstra.NewAdjacency(-1, nil)
	require.ErrorIs(t, err, dijkstra.ErrInvalidNodeCount)
}

func TestNewAdjacency_EdgeOutOfRange(t *testing.T) {
	_, err := dijkstra.NewAdjacency(2, []dijkstra.Edge{{From: 1, To: 3, Weight: 1}})
	require.ErrorIs(t, err, dijkstra.ErrEdgeOutOfRange)

	_, err = dijkstra.NewAdjacency(2, []dijkstra.Edge{{From: 0, To: 1, Weight: 1}})
	require.ErrorIs(t, err, dijkstra.ErrEdgeOutOfRange)
}

func TestNewAdjacency_NegativeWeightDetectedEarly(t *testing.T) {
	_, err := dijkstra.NewAdjacency(2, []dijkstra.Edge{{From: 1, To: 2, Weight: -5}})
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.NewAdjacency(2, []dijkstra.Edge{{From: 1, To: 2, Weight: math.NaN()}})
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestNewAdjacency_EmptyGraph(t *testing.T) {
	adj, err := dijkstra.NewAdjacency(0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, adj.NodeCount())

	// An empty graph has no valid source.
	_, err = dijkstra.ShortestPaths(context.Background(), adj, 1)
	require.ErrorIs(t, err, dijkstra.ErrInvalidSource)
}

func TestShortestPaths_NilAdjacency(t *testing.T) {
	_, err := dijkstra.ShortestPaths(context.Background(), nil, 1)
	require.ErrorIs(t, err, dijkstra.ErrNilAdjacency)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() {
		opts := dijkstra.DefaultOptions()
		dijkstra.WithMaxDistance(-1)(&opts)
	})
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: chain, reachability, result shape.
// ------------------------------------------------------------------------

func TestShortestPath_Chain(t *testing.T) {
	// 1 →5→ 2 →3→ 3
	edges := []dijkstra.Edge{{1, 2, 5}, {2, 3, 3}}

	dist, err := dijkstra.ShortestPath(3, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0, 2: 5, 3: 8}, dist)

	// 3 has no outgoing edges: only itself.
	dist, err = dijkstra.ShortestPath(3, edges, 3)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{3: 0}, dist)
}

func TestShortestPath_DirectedOnly(t *testing.T) {
	// Edges are never mirrored: 2 cannot reach 1.
	dist, err := dijkstra.ShortestPath(2, []dijkstra.Edge{{1, 2, 4}}, 2)
	require.NoError(t, err)
	_, ok := dist[1]
	assert.False(t, ok, "1 must be absent, not infinite")
}

func TestShortestPath_DisconnectedNodeAbsent(t *testing.T) {
	dist, err := dijkstra.ShortestPath(4, []dijkstra.Edge{{1, 2, 1}, {2, 3, 1}}, 1)
	require.NoError(t, err)
	assert.Len(t, dist, 3)
	assert.NotContains(t, dist, 4)

	dist, err = dijkstra.ShortestPath(4, []dijkstra.Edge{{1, 2, 1}, {2, 3, 1}}, 4)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{4: 0}, dist)
}

func TestShortestPath_MediumDirectedGraph(t *testing.T) {
	// 1→2(2), 1→3(1), 3→2(1), 2→4(3), 3→4(5)
	edges := []dijkstra.Edge{{1, 2, 2}, {1, 3, 1}, {3, 2, 1}, {2, 4, 3}, {3, 4, 5}}

	dist, err := dijkstra.ShortestPath(4, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0, 2: 2, 3: 1, 4: 5}, dist)
}

// ------------------------------------------------------------------------
// 3. Edge Cases: parallel edges, self-loops, zero weights, impassable edges.
// ------------------------------------------------------------------------

func TestShortestPath_ParallelEdgesTakeMinimum(t *testing.T) {
	dist, err := dijkstra.ShortestPath(2, []dijkstra.Edge{{1, 2, 5}, {1, 2, 2}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist[2])
}

func TestShortestPath_SelfLoopNeverImproves(t *testing.T) {
	dist, err := dijkstra.ShortestPath(2, []dijkstra.Edge{{1, 1, 10}, {1, 2, 1}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, dist[1])
	assert.Equal(t, 1.0, dist[2])
}

func TestShortestPath_ZeroWeightEdges(t *testing.T) {
	edges := []dijkstra.Edge{{1, 2, 0}, {2, 3, 0}, {1, 3, 1}}
	dist, err := dijkstra.ShortestPath(3, edges, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0, 2: 0, 3: 0}, dist)
}

func TestShortestPath_InfiniteWeightIsImpassable(t *testing.T) {
	dist, err := dijkstra.ShortestPath(2, []dijkstra.Edge{{1, 2, math.Inf(1)}}, 1)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0}, dist)
}

func TestShortestPath_FractionalWeights(t *testing.T) {
	edges := []dijkstra.Edge{{1, 2, 12.5}, {2, 3, 0.25}, {1, 3, 13}}
	dist, err := dijkstra.ShortestPath(3, edges, 1)
	require.NoError(t, err)
	assert.InDelta(t, 12.75, dist[3], 1e-12)
}

// ------------------------------------------------------------------------
// 4. Options: MaxDistance, ReturnPath, cancellation.
// ------------------------------------------------------------------------

func TestShortestPaths_MaxDistanceLimits(t *testing.T) {
	adj, err := dijkstra.NewAdjacency(4, []dijkstra.Edge{{1, 2, 1}, {2, 3, 1}, {3, 4, 1}})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(context.Background(), adj, 1, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0, 2: 1}, res.Dist)

	res, err = dijkstra.ShortestPaths(context.Background(), adj, 1, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Distances{1: 0}, res.Dist)
}

func TestShortestPaths_ReturnPath(t *testing.T) {
	edges := []dijkstra.Edge{{1, 2, 2}, {1, 3, 1}, {3, 2, 1}, {2, 4, 3}, {3, 4, 5}}
	adj, err := dijkstra.NewAdjacency(4, edges)
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(context.Background(), adj, 1, dijkstra.WithReturnPath())
	require.NoError(t, err)

	assert.NotContains(t, res.Prev, 1)
	assert.Equal(t, 1, res.Prev[3])

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Dist[4])
	// Both 1→2→4 and 1→3→2→4 cost 5; either is a valid shortest path.
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 4, path[len(path)-1])
	assertPathCost(t, edges, path, res.Dist[4])

	self, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, self)
}

func TestShortestPaths_NoPredecessorsWithoutOption(t *testing.T) {
	adj, err := dijkstra.NewAdjacency(2, []dijkstra.Edge{{1, 2, 1}})
	require.NoError(t, err)

	res, err := dijkstra.ShortestPaths(context.Background(), adj, 1)
	require.NoError(t, err)
	assert.Nil(t, res.Prev)

	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestPathTo_Unreachable(t *testing.T) {
	_, err := dijkstra.PathTo(map[int]int{2: 1}, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestPathTo_CorruptedTree(t *testing.T) {
	_, err := dijkstra.PathTo(map[int]int{2: 3, 3: 2}, 1, 2)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPaths_CancelledContext(t *testing.T) {
	adj, err := dijkstra.NewAdjacency(2, []dijkstra.Edge{{1, 2, 1}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dijkstra.ShortestPaths(ctx, adj, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestShortestPaths_SharedAdjacencyUnchanged(t *testing.T) {
	adj, err := dijkstra.NewAdjacency(3, []dijkstra.Edge{{1, 2, 1}, {2, 3, 1}, {3, 1, 1}})
	require.NoError(t, err)
	arcs := adj.ArcCount()

	for src := 1; src <= 3; src++ {
		res, err := dijkstra.ShortestPaths(context.Background(), adj, src)
		require.NoError(t, err)
		assert.Len(t, res.Dist, 3)
	}
	assert.Equal(t, arcs, adj.ArcCount())
	assert.Equal(t, 1, adj.OutDegree(1))
	assert.Equal(t, 0, adj.OutDegree(99))
}

// ------------------------------------------------------------------------
// 5. Optimality: compare against exhaustive simple-path enumeration.
// ------------------------------------------------------------------------

func TestShortestPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(8)
		m := rng.Intn(3 * n)
		edges := make([]dijkstra.Edge, 0, m)
		for i := 0; i < m; i++ {
			edges = append(edges, dijkstra.Edge{
				From:   1 + rng.Intn(n),
				To:     1 + rng.Intn(n),
				Weight: float64(rng.Intn(20)),
			})
		}

		for src := 1; src <= n; src++ {
			dist, err := dijkstra.ShortestPath(n, edges, src)
			require.NoError(t, err)

			want := bruteForce(n, edges, src)
			require.Equal(t, want, dist, "trial=%d n=%d src=%d edges=%v", trial, n, src, edges)
		}
	}
}

// bruteForce enumerates every simple path from src by DFS and keeps the minimum
// cost per target. Simple paths suffice because weights are non-negative.
func bruteForce(n int, edges []dijkstra.Edge, src int) dijkstra.Distances {
	best := dijkstra.Distances{src: 0}
	onPath := make([]bool, n+1)

	var walk func(u int, cost float64)
	walk = func(u int, cost float64) {
		onPath[u] = true
		for _, e := range edges {
			if e.From != u || onPath[e.To] {
				continue
			}
			c := cost + e.Weight
			if cur, ok := best[e.To]; !ok || c < cur {
				best[e.To] = c
			}
			walk(e.To, c)
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

// assertPathCost checks that path is a real edge sequence whose cheapest
// realization costs want.
func assertPathCost(t *testing.T, edges []dijkstra.Edge, path []int, want float64) {
	t.Helper()

	var total float64
	for i := 0; i+1 < len(path); i++ {
		step := math.Inf(1)
		for _, e := range edges {
			if e.From == path[i] && e.To == path[i+1] && e.Weight < step {
				step = e.Weight
			}
		}
		require.False(t, math.IsInf(step, 1), "no edge %d→%d", path[i], path[i+1])
		total += step
	}
	assert.Equal(t, want, total)
}
