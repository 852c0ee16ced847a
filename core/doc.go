// Package core provides the thread-safe directed Graph the account
// topology is built from: vertices are accounts, edges are the directed
// connections dag.DAG indexes for incoming-edge lookups and reachability
// estimation.
//
// It is a narrowed descendant of a more general graph library that also
// supported undirected edges, multi-edges, self-loop toggles, and
// per-edge direction overrides — none of which the account topology ever
// exercises, so this package keeps only the directed, single-edge-per-pair
// subset:
//
//	AddVertex(id string) error
//	HasVertex(id string) bool
//	Vertices() []string
//	AddEdge(from, to string, weight int64) (edgeID string, err error)
//	Neighbors(id string) ([]*Edge, error)
//	NeighborIDs(id string) ([]string, error)
//
// Vertices() and Neighbors()/NeighborIDs() return sorted, freshly
// allocated slices so callers (bfs, dfs) get reproducible traversal order
// without needing their own locking.
package core
