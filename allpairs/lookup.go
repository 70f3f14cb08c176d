// SPDX-License-Identifier: MIT
// Package: campusnav/allpairs
//
// lookup.go - serving-side queries over a computed Result.

package allpairs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/normalize"
)

// Resolve maps a display name to its dense id. A name shared by several nodes
// is reported as ambiguous rather than silently resolved to the last one.
func (r *Result) Resolve(name string) (int, error) {
	node, ok := r.Labels[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	if ids := r.Groups[name]; len(ids) > 1 {
		return 0, fmt.Errorf("%w: %q is carried by nodes %v", ErrAmbiguousLocation, name, ids)
	}

	return node.ID, nil
}

// Node returns the node with dense id.
func (r *Result) Node(id int) (normalize.Node, error) {
	if id < 1 || id > len(r.Nodes) {
		return normalize.Node{}, fmt.Errorf("%w: id %d", ErrUnknownLocation, id)
	}

	return r.Nodes[id-1], nil
}

// DistanceByID returns the precomputed distance from source to target.
func (r *Result) DistanceByID(source, target int) (float64, error) {
	if _, err := r.Node(source); err != nil {
		return 0, err
	}
	if _, err := r.Node(target); err != nil {
		return 0, err
	}

	d, ok := r.ShortestPaths[source][target]
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrRouteUnavailable, source, target)
	}

	return d, nil
}

// Distance resolves both names and returns the distance between them.
func (r *Result) Distance(from, to string) (float64, error) {
	s, err := r.Resolve(from)
	if err != nil {
		return 0, err
	}
	t, err := r.Resolve(to)
	if err != nil {
		return 0, err
	}

	return r.DistanceByID(s, t)
}

// RouteByID returns the nodes along a shortest path and its length.
func (r *Result) RouteByID(source, target int) ([]normalize.Node, float64, error) {
	d, err := r.DistanceByID(source, target)
	if err != nil {
		return nil, 0, err
	}
	if r.Predecessors == nil {
		return nil, 0, ErrPathsNotRetained
	}

	ids, err := dijkstra.PathTo(r.Predecessors[source], source, target)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, 0, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
		}
		return nil, 0, err
	}

	nodes := make([]normalize.Node, len(ids))
	for i, id := range ids {
		nodes[i] = r.Nodes[id-1]
	}

	return nodes, d, nil
}

// Route resolves both names and returns the shortest path between them.
func (r *Result) Route(from, to string) ([]normalize.Node, float64, error) {
	s, err := r.Resolve(from)
	if err != nil {
		return nil, 0, err
	}
	t, err := r.Resolve(to)
	if err != nil {
		return nil, 0, err
	}

	return r.RouteByID(s, t)
}
