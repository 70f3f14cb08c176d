// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_star.go - Star(n): a central quad with n-1 spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/mapdata"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub (the first node added) linked to n-1
// leaves. Spokes point hub→leaf unless WithBidirectional is set.
func Star(n int) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids := addNodes(m, cfg, n)
		for i := 1; i < n; i++ {
			addLink(m, ids[0], ids[i], cfg.weight(), cfg.bidirectional)
		}

		return nil
	}
}

// Connect returns a Constructor adding a single link u→v with distance w
// between two nodes already in the map, typically to bridge components.
func Connect(u, v string, w float64) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		known := make(map[mapdata.ExternalID]bool, len(m.Nodes))
		for _, n := range m.Nodes {
			known[n.ID] = true
		}
		for _, id := range []string{u, v} {
			if !known[mapdata.ExternalID(id)] {
				return fmt.Errorf("Connect: unknown node %q: %w", id, ErrConstructFailed)
			}
		}

		addLink(m, mapdata.ExternalID(u), mapdata.ExternalID(v), w, cfg.bidirectional)

		return nil
	}
}
