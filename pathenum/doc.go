// Package pathenum enumerates paths from the sink-side endpoint of a
// candidate transaction edge, walking reverse along incoming_edges until a
// DAG source is reached. Enumeration is exhaustive up to a configurable
// max_paths cap, deduplicated by content hash over the ordered node_id
// sequence, and exposed as a pull-style iterator (Next/All), matching the
// single-struct walker convention bfs.BFS already follows in this module.
package pathenum
