// SPDX-License-Identifier: MIT
// Package normalize converts a raw campus map into the dense-id graph the
// shortest-path engine consumes, plus the name lookup used by the serving side.
//
// Normalization rules:
//
//   - Nodes receive dense ids 1..N in raw order; the same raw input always yields
//     the same ids.
//   - A node without a display name is labelled "unnamed_<id>".
//   - Every link is resolved through the identifier map; an unknown endpoint aborts
//     normalization with ErrMissingNodeReference instead of dropping the link.
//   - The name index is last-write-wins. Groups keeps every id per name so callers
//     can detect names that are shadowed.
//
// Errors:
//
//	ErrNilMap               - the raw map pointer is nil.
//	ErrDuplicateNode        - two nodes share an external id.
//	ErrMissingNodeReference - a link endpoint has no node.
//	ErrInvalidDistance      - a link distance is NaN or infinite.
//	mapdata.ErrEmptyID      - a node carries an empty external id.
package normalize

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/mapdata"
)

// Sentinel errors for normalization.
var (
	// ErrNilMap indicates a nil *mapdata.RawMap.
	ErrNilMap = errors.New("normalize: raw map is nil")

	// ErrDuplicateNode indicates two raw nodes share the same external id,
	// which would break the external→dense bijection.
	ErrDuplicateNode = errors.New("normalize: duplicate external node id")

	// ErrMissingNodeReference indicates a link endpoint with no matching node.
	ErrMissingNodeReference = errors.New("normalize: link references unknown node")

	// ErrInvalidDistance indicates a NaN or infinite link distance.
	ErrInvalidDistance = errors.New("normalize: link distance is not finite")
)

// placeholderPrefix is prepended to the dense id of an unnamed node.
const placeholderPrefix = "unnamed_"

// PlaceholderName returns the synthesized display name for dense id.
func PlaceholderName(id int) string {
	return placeholderPrefix + strconv.Itoa(id)
}

// Node is a normalized location record.
type Node struct {
	ID          int                // dense id in [1, N]
	External    mapdata.ExternalID // id in the raw map
	Name        string             // display name, original or synthesized
	Synthesized bool               // true if Name is a placeholder
}

// Graph is the engine's input shape.
type Graph struct {
	// NodeCount is the number of nodes; ids are 1..NodeCount.
	NodeCount int

	// Nodes[i] is the node with dense id i+1.
	Nodes []Node

	// Edges in raw link order (each followed by its reverse when undirected).
	Edges []dijkstra.Edge
}

// Node returns the node with dense id, if any.
func (g *Graph) Node(id int) (Node, bool) {
	if g == nil || id < 1 || id > len(g.Nodes) {
		return Node{}, false
	}

	return g.Nodes[id-1], true
}

// IdentifierMap maps external ids to dense ids.
type IdentifierMap map[mapdata.ExternalID]int

// NameIndex maps a display name to the last node that carried it.
type NameIndex map[string]Node

// NameGroups maps a display name to every dense id carrying it, in id order.
type NameGroups map[string][]int

// Result bundles the three normalization products.
type Result struct {
	Graph  *Graph
	IDs    IdentifierMap
	Labels NameIndex
	Groups NameGroups
}

// Ambiguous returns the names carried by more than one node, ordered by the
// first node carrying each.
func (r *Result) Ambiguous() []string {
	var names []string
	seen := make(map[string]bool)
	for _, n := range r.Graph.Nodes {
		if len(r.Groups[n.Name]) > 1 && !seen[n.Name] {
			seen[n.Name] = true
			names = append(names, n.Name)
		}
	}

	return names
}
