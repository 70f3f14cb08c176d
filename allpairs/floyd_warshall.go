// SPDX-License-Identifier: MIT
// Package: campusnav/allpairs
//
// floyd_warshall.go - dense all-pairs closure for small maps.
//
// Contract:
//   - Distances live in a flat row-major n×n buffer; +Inf means "no path".
//   - The diagonal starts at 0; parallel edges keep the lighter weight.
//   - Loop order is fixed (k → i → j), so accumulation is deterministic.
//   - Unreachable pairs are left out of the returned Table, matching the
//     engine's Distances.

package allpairs

import (
	"context"
	"math"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// floydWarshall computes the table in O(n³) time and O(n²) space.
// Edges are validated exactly as the engine validates them.
func floydWarshall(ctx context.Context, n int, edges []dijkstra.Edge) (Table, error) {
	if _, err := dijkstra.NewAdjacency(n, edges); err != nil {
		return nil, err
	}

	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := range data {
		data[i] = inf
	}
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}
	for _, e := range edges {
		idx := (e.From-1)*n + (e.To - 1)
		if e.Weight < data[idx] {
			data[idx] = e.Weight
		}
	}

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	table := make(Table, n)
	for i = 0; i < n; i++ {
		row := make(dijkstra.Distances)
		baseI = i * n
		for j = 0; j < n; j++ {
			if d := data[baseI+j]; !math.IsInf(d, 1) {
				row[j+1] = d
			}
		}
		table[i+1] = row
	}

	return table, nil
}
