// SPDX-License-Identifier: MIT
// Package: campusnav/normalize
//
// normalize.go - dense id assignment, placeholder names, edge resolution, name index.
//
// Determinism:
//   - Ids follow raw node order; edges follow raw link order.
//   - The input map is never mutated; two calls on the same input return equal results.

package normalize

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/mapdata"
)

// Option configures Normalize.
type Option func(*options)

type options struct {
	undirected bool
	logger     hclog.Logger
}

// WithUndirected emits a reverse edge for every link that is not a self-loop.
// Without it links stay one-way, exactly as listed.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// WithLogger sets the logger used for the normalization summary and for
// shadowed-name diagnostics. A nil logger is ignored.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Normalize builds the dense-id graph, identifier map and name index for raw.
//
// Steps:
//  1. Assign dense id = 1-based position to every node, rejecting duplicates.
//  2. Synthesize "unnamed_<id>" for nodes without a name.
//  3. Resolve every link's endpoints; fail on the first unknown one.
//  4. Index nodes by name, last write wins.
//
// Complexity: O(N + L) time and space.
func Normalize(raw *mapdata.RawMap, opts ...Option) (*Result, error) {
	if raw == nil {
		return nil, ErrNilMap
	}

	cfg := options{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes, ids, err := assignIDs(raw.Nodes)
	if err != nil {
		return nil, err
	}

	edges, err := resolveLinks(raw.Links, ids, cfg.undirected)
	if err != nil {
		return nil, err
	}

	labels, groups := indexNames(nodes, cfg.logger)

	res := &Result{
		Graph: &Graph{
			NodeCount: len(nodes),
			Nodes:     nodes,
			Edges:     edges,
		},
		IDs:    ids,
		Labels: labels,
		Groups: groups,
	}

	cfg.logger.Debug("normalized raw map",
		"nodes", len(nodes),
		"links", len(raw.Links),
		"edges", len(edges),
		"labels", len(labels),
		"ambiguous", len(res.Ambiguous()))

	return res, nil
}

// assignIDs implements steps 1 and 2.
func assignIDs(raw []mapdata.RawNode) ([]Node, IdentifierMap, error) {
	nodes := make([]Node, 0, len(raw))
	ids := make(IdentifierMap, len(raw))

	for i, rn := range raw {
		if err := rn.ID.Validate(); err != nil {
			return nil, nil, fmt.Errorf("normalize: node #%d: %w", i, err)
		}
		if first, dup := ids[rn.ID]; dup {
			return nil, nil, fmt.Errorf("%w: %q at ids %d and %d", ErrDuplicateNode, rn.ID, first, i+1)
		}

		id := i + 1
		ids[rn.ID] = id

		node := Node{ID: id, External: rn.ID, Name: rn.Name}
		if node.Name == "" {
			node.Name = PlaceholderName(id)
			node.Synthesized = true
		}
		nodes = append(nodes, node)
	}

	return nodes, ids, nil
}

// resolveLinks implements step 3.
func resolveLinks(links []mapdata.RawLink, ids IdentifierMap, undirected bool) ([]dijkstra.Edge, error) {
	size := len(links)
	if undirected {
		size *= 2
	}
	edges := make([]dijkstra.Edge, 0, size)

	for i, l := range links {
		from, ok := ids[l.Source]
		if !ok {
			return nil, fmt.Errorf("%w: link #%d source %q", ErrMissingNodeReference, i, l.Source)
		}
		to, ok := ids[l.Target]
		if !ok {
			return nil, fmt.Errorf("%w: link #%d target %q", ErrMissingNodeReference, i, l.Target)
		}
		if math.IsNaN(l.Distance) || math.IsInf(l.Distance, 0) {
			return nil, fmt.Errorf("%w: link #%d %q→%q distance=%g",
				ErrInvalidDistance, i, l.Source, l.Target, l.Distance)
		}

		edges = append(edges, dijkstra.Edge{From: from, To: to, Weight: l.Distance})
		if undirected && from != to {
			edges = append(edges, dijkstra.Edge{From: to, To: from, Weight: l.Distance})
		}
	}

	return edges, nil
}

// indexNames implements step 4.
func indexNames(nodes []Node, logger hclog.Logger) (NameIndex, NameGroups) {
	labels := make(NameIndex, len(nodes))
	groups := make(NameGroups, len(nodes))

	for _, n := range nodes {
		if prev, shadowed := labels[n.Name]; shadowed {
			logger.Debug("name shadows earlier node", "name", n.Name, "previous", prev.ID, "id", n.ID)
		}
		labels[n.Name] = n
		groups[n.Name] = append(groups[n.Name], n.ID)
	}

	return labels, groups
}
