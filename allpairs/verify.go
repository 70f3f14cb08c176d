// SPDX-License-Identifier: MIT
// Package: campusnav/allpairs
//
// verify.go - consistency checks for a table loaded from disk or computed elsewhere.

package allpairs

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// verifyEpsilon absorbs float rounding in the triangle check.
const verifyEpsilon = 1e-9

// Verify checks the shortest-path properties every correct table satisfies:
//
//  1. Every node has a row and its self distance is 0.
//  2. Every stored distance is finite and non-negative.
//  3. For every edge u→v with u reachable from s: d(s,v) ≤ d(s,u) + w(u,v).
//
// All violations are reported together, each wrapping ErrInconsistentTable.
func (r *Result) Verify() error {
	var merr *multierror.Error
	n := len(r.Nodes)

	for s := 1; s <= n; s++ {
		row, ok := r.ShortestPaths[s]
		if !ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: no row for source %d", ErrInconsistentTable, s))
			continue
		}
		if d, ok := row[s]; !ok || d != 0 {
			merr = multierror.Append(merr, fmt.Errorf("%w: d(%d,%d)=%g, want 0", ErrInconsistentTable, s, s, d))
		}
		for t, d := range row {
			if t < 1 || t > n {
				merr = multierror.Append(merr, fmt.Errorf("%w: d(%d,%d) names unknown node", ErrInconsistentTable, s, t))
			} else if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
				merr = multierror.Append(merr, fmt.Errorf("%w: d(%d,%d)=%g", ErrInconsistentTable, s, t, d))
			}
		}

		for _, e := range r.Edges {
			if math.IsInf(e.Weight, 1) {
				continue
			}
			du, ok := row[e.From]
			if !ok {
				continue
			}
			dv, ok := row[e.To]
			if !ok {
				merr = multierror.Append(merr, fmt.Errorf("%w: %d reaches %d but not its neighbor %d",
					ErrInconsistentTable, s, e.From, e.To))
				continue
			}
			if dv > du+e.Weight+verifyEpsilon {
				merr = multierror.Append(merr, fmt.Errorf("%w: d(%d,%d)=%g exceeds d(%d,%d)+w=%g",
					ErrInconsistentTable, s, e.To, dv, s, e.From, du+e.Weight))
			}
		}
	}
	for s := range r.ShortestPaths {
		if s < 1 || s > n {
			merr = multierror.Append(merr, fmt.Errorf("%w: row for unknown source %d", ErrInconsistentTable, s))
		}
	}

	return merr.ErrorOrNil()
}
