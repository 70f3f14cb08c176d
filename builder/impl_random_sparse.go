// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run over ordered pairs (i, j), i ≠ j, i ascending then j ascending.
//     Without WithBidirectional each success adds one one-way link; with it,
//     only pairs i < j are tried and each success adds both directions.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/mapdata"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling links independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addNodes(m, cfg, n)
		hit := func() bool {
			if cfg.rng == nil {
				return p == probMax
			}
			return cfg.rng.Float64() < p || p == probMax
		}

		for i := 0; i < n; i++ {
			start := 0
			if cfg.bidirectional {
				start = i + 1
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if hit() {
					addLink(m, ids[i], ids[j], cfg.weight(), cfg.bidirectional)
				}
			}
		}

		return nil
	}
}
