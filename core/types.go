// Package core defines the directed graph used to model the account
// topology: Vertex, Edge, Graph, and the thread-safe primitives the dag,
// bfs, and dfs packages build on.
//
// This is a deliberately small subset of a general-purpose graph type:
// the account topology is always directed and never needs parallel edges,
// self-loops, or per-edge direction overrides, so those modes (present in
// the library this package descends from) have no home here. A Graph
// guards its vertex catalog and its edge/adjacency catalog with separate
// locks (muVert, muEdgeAdj) so reads on one side never block writes on
// the other.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Vertex represents a node in the graph.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied.
	Metadata map[string]interface{}
}

// IsNil reports whether the receiver should be treated as nil when stored
// inside interfaces (safe for a typed-nil *Vertex).
func (v *Vertex) IsNil() bool { return v == nil }

// Edge represents a directed connection between two vertices.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is opaque caller data (dag.DAG.Connect stores whatever weight
	// its caller passes; path enumeration does not read it).
	Weight int64

	// Directed is always true: every edge in this package is one-way.
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected is retained for construction-site clarity even though every
// Graph this package builds is directed; passing false only changes what
// Directed reports, every edge is still one-way (dag.New always passes
// true).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory directed graph the account topology is built on.
// muVert protects vertices; muEdgeAdj protects edges and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// adjacencyList[from][to] = the edge from->to, if one has been added.
	adjacencyList map[string]map[string]*Edge
}

// NewGraph creates an empty, directed Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:      true,
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]*Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the Graph's default edge orientation.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted. The account topology
// never disables them explicitly, but dfs.DetectCycles treats any
// self-loop as a one-node cycle regardless of this flag.
func (g *Graph) Looped() bool { return true }

// Weighted reports whether the Graph enforces a weighted/unweighted mode.
// This Graph never does — Weight is caller-opaque — so bfs.BFS's
// weighted-graph guard is always a no-op here.
func (g *Graph) Weighted() bool { return false }
