// Package campusnav computes walking distances between every pair of locations
// on a campus map, offline, so directions can be served by table lookup.
//
// The pipeline:
//
//	raw map (JSON) ─▶ mapdata.Decode      schema-checked nodes and links
//	               ─▶ normalize.Normalize dense ids 1..N, placeholder names, name index
//	               ─▶ allpairs.Precompute one Dijkstra run per source, optionally parallel
//	               ─▶ store.SaveFile      gob + snappy artifact
//
// Subpackages:
//
//	mapdata/   - raw map types, JSON schema validation, encode/decode
//	normalize/ - external→dense id mapping, "unnamed_<id>" labels, name groups
//	dijkstra/  - single-source shortest paths (binary heap, lazy decrease-key)
//	allpairs/  - the all-pairs pipeline, Floyd–Warshall for small maps, lookups
//	store/     - artifact persistence with compression and checksums
//	config/    - TOML configuration and hclog/lumberjack logging
//	builder/   - synthetic campus generators for tests and benchmarks
//
// The command in cmd/campusnav wires these together:
//
//	campusnav precompute -config campusnav.toml
//	campusnav query -table campus.cnav -from "Library" -to "Gym"
//
// Distances are non-negative float64 meters. A location unreachable from a
// source is absent from that source's table; it is never stored as infinity.
package campusnav
