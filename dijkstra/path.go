// SPDX-License-Identifier: MIT
// Package: campusnav/dijkstra
//
// path.go - node sequence reconstruction from a predecessor tree.

package dijkstra

import "fmt"

// PathTo walks prev back from target to source and returns the node sequence
// source → … → target. A path from a node to itself is [source].
//
// Errors:
//   - ErrNoPath if target is not in the tree rooted at source, or if prev
//     contains a cycle (a corrupted tree).
func PathTo(prev map[int]int, source, target int) ([]int, error) {
	if target == source {
		return []int{source}, nil
	}

	path := []int{target}
	cur := target
	// A valid tree never needs more steps than it has entries.
	for steps := 0; cur != source; steps++ {
		if steps > len(prev) {
			return nil, fmt.Errorf("%w: cycle in predecessor tree at %d", ErrNoPath, cur)
		}
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place: collected target-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathTo reconstructs the path to target from this run's predecessor tree.
// Requires the run to have used WithReturnPath.
func (r *Result) PathTo(target int) ([]int, error) {
	if r.Prev == nil {
		if _, ok := r.Dist[target]; ok && target == r.Source {
			return []int{r.Source}, nil
		}
		return nil, fmt.Errorf("%w: predecessors were not recorded", ErrNoPath)
	}
	if _, ok := r.Dist[target]; !ok {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, r.Source, target)
	}

	return PathTo(r.Prev, r.Source, target)
}
