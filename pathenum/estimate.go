package pathenum

import (
	"fmt"

	"github.com/norkamer/caps/bfs"
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/taxonomy"
)

// PathToWord delegates to tax.PathToString, producing the canonical word a
// frozen wnfa.NFA will classify.
func PathToWord(p Path, tax *taxonomy.Taxonomy, version int) (string, error) {
	word, err := tax.PathToString(p.Nodes, version)
	if err != nil {
		return "", fmt.Errorf("pathenum: %w", err)
	}
	return word, nil
}

// EstimateCount returns the number of vertices other than startNode that
// bfs.BFS reaches over d's reversed adjacency view within
// Options.EstimateDepthCap hops. It is a cheap reachability count, not a
// bound on the number of reverse paths Enumerate yields: it counts interior
// nodes as well as sources, and it does not multiply through fan-in, so a
// layered DAG with many paths over few vertices gets a count far below its
// path count. It is not required for correctness.
func EstimateCount(d *dag.DAG, startNode string, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	result, err := bfs.BFS(d.ReverseView(), startNode, bfs.WithMaxDepth(o.EstimateDepthCap))
	if err != nil {
		return 0, fmt.Errorf("pathenum: estimate_count: %w", err)
	}

	// Every visited vertex other than startNode is counted once, whether it
	// is a source or an interior node; paths that share a vertex are not
	// counted separately.
	return len(result.Order) - 1, nil
}
