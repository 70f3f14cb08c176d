// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// api.go - the orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/mapdata"
)

// Constructor appends nodes and links to m using the resolved config.
// Constructors validate their parameters first and leave m untouched on error.
type Constructor func(m *mapdata.RawMap, cfg builderConfig) error

// BuildMap creates an empty raw map, resolves opts, and applies every
// constructor in order. The first constructor error is returned wrapped.
func BuildMap(opts []BuilderOption, cons ...Constructor) (*mapdata.RawMap, error) {
	m := &mapdata.RawMap{
		Nodes: []mapdata.RawNode{},
		Links: []mapdata.RawLink{},
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	return m, nil
}

// MustBuildMap is BuildMap for fixtures; it panics on error.
func MustBuildMap(opts []BuilderOption, cons ...Constructor) *mapdata.RawMap {
	m, err := BuildMap(opts, cons...)
	if err != nil {
		panic(err)
	}

	return m
}

// addNodes appends n nodes numbered after the existing ones and returns their
// external ids in order.
func addNodes(m *mapdata.RawMap, cfg builderConfig, n int) []mapdata.ExternalID {
	base := len(m.Nodes)
	ids := make([]mapdata.ExternalID, n)
	for i := 0; i < n; i++ {
		ids[i] = mapdata.ExternalID(cfg.idFn(base + i))
		m.AddNode(ids[i], cfg.nameFn(base+i))
	}

	return ids
}

// addLink appends u→v, and v→u as well when bidirectional.
func addLink(m *mapdata.RawMap, u, v mapdata.ExternalID, w float64, bidirectional bool) {
	m.AddLink(u, v, w)
	if bidirectional && u != v {
		m.AddLink(v, u, w)
	}
}
