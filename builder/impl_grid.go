// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// impl_grid.go - Grid(rows, cols): a street grid with 4-neighborhood.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes in row-major order; cell (r,c) has global index base + r*cols + c.
//   - For each cell emit Right then Bottom, each followed by its reverse.
//     Streets are two-way regardless of WithBidirectional.
//   - One weight draw per street, shared by both directions.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/mapdata"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(m *mapdata.RawMap, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids := addNodes(m, cfg, rows*cols)
		at := func(r, c int) mapdata.ExternalID { return ids[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addLink(m, at(r, c), at(r, c+1), cfg.weight(), true)
				}
				if r+1 < rows {
					addLink(m, at(r, c), at(r+1, c), cfg.weight(), true)
				}
			}
		}

		return nil
	}
}
