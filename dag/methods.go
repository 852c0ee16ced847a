package dag

import (
	"fmt"

	"github.com/norkamer/caps/core"
	"github.com/norkamer/caps/dfs"
)

// AddAccount inserts a node (account) if missing. Idempotent.
func (d *DAG) AddAccount(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.g.AddVertex(id)
}

// Connect adds a directed edge from->to, creating either endpoint if
// missing, and indexes it for incoming-edge lookups.
func (d *DAG) Connect(from, to string, weight int64) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, err := d.g.AddEdge(from, to, weight)
	if err != nil {
		return "", fmt.Errorf("dag: connect %q->%q: %w", from, to, err)
	}
	d.incoming[to] = append(d.incoming[to], Edge{ID: id, From: from, To: to})

	return id, nil
}

// NodeExists reports whether id has been added to the DAG.
func (d *DAG) NodeExists(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.g.HasVertex(id)
}

// IsSource reports whether id has no incoming edges — the spec.md §3
// "source" predicate.
func (d *DAG) IsSource(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.incoming[id]) == 0
}

// IncomingEdges returns the edges whose To endpoint is id, sorted by
// Edge.ID for deterministic enumeration order.
func (d *DAG) IncomingEdges(id string) ([]Edge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.g.HasVertex(id) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return sortedEdgeCopy(d.incoming[id]), nil
}

// EdgeBetween returns the edge from->to if one exists.
func (d *DAG) EdgeBetween(from, to string) (Edge, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.incoming[to] {
		if e.From == from {
			return e, nil
		}
	}

	return Edge{}, fmt.Errorf("%w: no edge %q->%q", ErrNodeNotFound, from, to)
}

// Sources returns every node with no incoming edges, sorted.
func (d *DAG) Sources() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []string
	for _, id := range d.g.Vertices() {
		if len(d.incoming[id]) == 0 {
			out = append(out, id)
		}
	}

	return out
}

// Validate checks the DAG's defining invariant — acyclicity — using the
// same three-color DFS the rest of this repository uses for cycle
// detection. It returns ErrNotAcyclic, wrapping the discovered cycles,
// when the graph is not a DAG.
func (d *DAG) Validate() error {
	d.mu.RLock()
	snapshot := d.g
	d.mu.RUnlock()

	hasCycle, cycles, err := dfs.DetectCycles(snapshot)
	if err != nil {
		return fmt.Errorf("dag: validate: %w", err)
	}
	if hasCycle {
		return fmt.Errorf("%w: %v", ErrNotAcyclic, cycles)
	}

	return nil
}

// ReverseView builds a *core.Graph whose edges run opposite to the DAG's,
// so that bfs.BFS (which only ever walks forward adjacency) can be reused
// by pathenum.EstimateCount to answer reachability questions against
// incoming edges. It is rebuilt on demand rather than kept in sync
// incrementally because estimate_count is a cheap heuristic, not a
// correctness-critical path (spec.md §4.3).
func (d *DAG) ReverseView() *core.Graph {
	d.mu.RLock()
	defer d.mu.RUnlock()

	rev := core.NewGraph(core.WithDirected(true))
	for _, id := range d.g.Vertices() {
		_ = rev.AddVertex(id)
	}
	for to, edges := range d.incoming {
		for _, e := range edges {
			_, _ = rev.AddEdge(to, e.From, 0)
		}
	}

	return rev
}
