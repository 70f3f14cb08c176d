// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Emission order: nodes by index; links i→i+1 ascending, then (Cycle) the
// closing link n-1→0. With WithBidirectional each link is followed by its reverse.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/mapdata"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for a corridor of n nodes (n ≥ 2).
func Path(n int) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := addNodes(m, cfg, n)
		for i := 0; i+1 < n; i++ {
			addLink(m, ids[i], ids[i+1], cfg.weight(), cfg.bidirectional)
		}

		return nil
	}
}

// Cycle returns a Constructor for a ring walkway of n nodes (n ≥ 3).
func Cycle(n int) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addNodes(m, cfg, n)
		for i := 0; i < n; i++ {
			addLink(m, ids[i], ids[(i+1)%n], cfg.weight(), cfg.bidirectional)
		}

		return nil
	}
}
