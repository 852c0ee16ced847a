package dag

import (
	"errors"
	"sort"
	"sync"

	"github.com/norkamer/caps/core"
)

// Sentinel errors for the dag package.
var (
	// ErrNodeNotFound is returned when an operation references a missing node.
	ErrNodeNotFound = errors.New("dag: node not found")

	// ErrNotAcyclic is returned by Validate when the graph contains a cycle.
	ErrNotAcyclic = errors.New("dag: graph is not acyclic")
)

// Edge is a directed connection between two DAG nodes, mirroring the
// node_id-keyed entity described in spec.md §3.
type Edge struct {
	ID   string
	From string
	To   string
}

// Reader is the external DAG-reader contract the validation pipeline
// consumes (spec.md §6): given node identifiers, it must report existence,
// source status, and the edges incoming to a node. Implementations are
// expected to be acyclic and are never mutated by a validation call.
type Reader interface {
	NodeExists(id string) bool
	IsSource(id string) bool
	IncomingEdges(id string) ([]Edge, error)
}

// DAG is the reference Reader implementation, adapting a directed
// core.Graph with a reverse-adjacency index for O(deg) incoming-edge
// lookups (core.Graph itself only exposes forward neighbor queries).
type DAG struct {
	mu       sync.RWMutex
	g        *core.Graph
	incoming map[string][]Edge // node_id -> edges whose To == node_id
}

// New creates an empty, directed DAG; opts are passed on to core.NewGraph.
// Connect rejects neither a self-loop nor a cycle; Validate reports them.
func New(opts ...core.GraphOption) *DAG {
	base := []core.GraphOption{core.WithDirected(true)}
	base = append(base, opts...)
	return &DAG{
		g:        core.NewGraph(base...),
		incoming: make(map[string][]Edge),
	}
}

var _ Reader = (*DAG)(nil)

// sortedEdgeCopy returns a freshly-allocated, ID-sorted copy of edges — the
// same "never share backing arrays with callers" discipline core.Graph
// itself follows.
func sortedEdgeCopy(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
