// SPDX-License-Identifier: MIT
// Package: campusnav/mapdata
//
// decode.go - reading and writing the raw map JSON document.
//
// Contract:
//   - The document is validated against the embedded raw map schema before it is
//     decoded into typed records, so shape errors surface as ErrInvalidDocument with
//     the schema's own location in the message.
//   - Fields the schema does not name (OSMnx exports carry many) are ignored.

package mapdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var rawMapSchema string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// schema compiles the embedded raw map schema once per process.
func schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString("raw-map.schema.json", rawMapSchema)
	})

	return compiledSchema, schemaErr
}

// Decode reads a raw map document from r, validates it and returns the typed map.
func Decode(r io.Reader) (*RawMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mapdata: read: %w", err)
	}

	// 1) Generic decode for schema validation; UseNumber keeps id literals intact.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("mapdata: compile schema: %w", err)
	}
	if err = sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// 2) Typed decode.
	var m RawMap
	if err = json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return &m, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*RawMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapdata: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("mapdata: %s: %w", path, err)
	}

	return m, nil
}

// Encode writes m as an indented raw map document.
// Nil slices are written as empty arrays so the output always decodes again.
func Encode(w io.Writer, m *RawMap) error {
	out := RawMap{Nodes: []RawNode{}, Links: []RawLink{}}
	if m != nil {
		out.Nodes = append(out.Nodes, m.Nodes...)
		out.Links = append(out.Links, m.Links...)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("mapdata: encode: %w", err)
	}

	return nil
}
