// Package bfs provides breadth-first search over a core.Graph. It backs
// pathenum.EstimateCount's depth-bounded reachability count: a BFS over
// the reversed DAG from a candidate endpoint counts the vertices reachable
// within a depth cap, without doing the exhaustive path walk itself.
//
// Determinism: core.Graph.NeighborIDs returns neighbor vertex ids in
// sorted order, and BFS enqueues neighbors in that order, so the visit
// sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|): Time O(V+E), Memory O(V).
package bfs
