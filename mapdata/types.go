// SPDX-License-Identifier: MIT
// Package: campusnav/mapdata
//
// types.go - external-form campus map records (RawNode, RawLink, RawMap).
//
// Contract:
//   - Records are read once from the raw map source and never mutated afterwards.
//   - Slice order is the source file order; downstream dense-id assignment depends on it.
//   - ExternalID is opaque: JSON strings and JSON numbers are both accepted and kept
//     in their literal textual form ("12" and 12 are the same key).

package mapdata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for raw map handling.
var (
	// ErrInvalidDocument indicates the raw map document is not valid JSON or does not
	// satisfy the raw map schema.
	ErrInvalidDocument = errors.New("mapdata: invalid raw map document")

	// ErrEmptyID indicates a node or link carries an empty external identifier.
	ErrEmptyID = errors.New("mapdata: external id is empty")
)

// ExternalID is the identifier a node carries in the raw map source.
type ExternalID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
// Numbers keep their literal text, so 42 becomes "42" and 4.0 stays "4.0".
func (id *ExternalID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: id: %v", ErrInvalidDocument, err)
	}

	switch t := v.(type) {
	case string:
		*id = ExternalID(t)
	case json.Number:
		*id = ExternalID(t.String())
	case nil:
		*id = ""
	default:
		return fmt.Errorf("%w: unsupported id type %T", ErrInvalidDocument, v)
	}

	return nil
}

// Validate reports ErrEmptyID for an empty identifier.
func (id ExternalID) Validate() error {
	if id == "" {
		return ErrEmptyID
	}

	return nil
}

// String returns the identifier text.
func (id ExternalID) String() string { return string(id) }

// RawNode is a location record as found in the raw map.
// An empty Name means the node has no display name.
type RawNode struct {
	ID   ExternalID `json:"id"`
	Name string     `json:"name,omitempty"`
}

// RawLink is a walkway record as found in the raw map.
// Links are directed: Source → Target.
type RawLink struct {
	Source   ExternalID `json:"source"`
	Target   ExternalID `json:"target"`
	Distance float64    `json:"distance"`
}

// RawMap is the whole raw map document.
type RawMap struct {
	Nodes []RawNode `json:"nodes"`
	Links []RawLink `json:"links"`
}

// AddNode appends a node and returns the map for chaining in fixtures.
func (m *RawMap) AddNode(id ExternalID, name string) *RawMap {
	m.Nodes = append(m.Nodes, RawNode{ID: id, Name: name})
	return m
}

// AddLink appends a directed link and returns the map for chaining in fixtures.
func (m *RawMap) AddLink(source, target ExternalID, distance float64) *RawMap {
	m.Links = append(m.Links, RawLink{Source: source, Target: target, Distance: distance})
	return m
}
