package txnfixture

import (
	"fmt"

	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// pathExplosionLayers is the number of width-2 full-bipartite layers
// between the synthetic sources and the sink; paths to the sink double at
// every layer (see PathExplosion's doc comment), so 6 layers already
// yields 2^7 = 128 distinct source-to-sink paths — comfortably over
// spec.md §8 Scenario 4's max_paths = 100.
const pathExplosionLayers = 6

// PathExplosion builds spec.md §8 Scenario 4: a DAG whose fan-in is high
// enough that reverse enumeration from the sink exceeds max_paths = 100.
// The topology is a chain of width-2 "diamonds": layer k's two nodes each
// receive an edge from both of layer k-1's nodes, so the path count to any
// node in layer k is double that of layer k-1 (f_0 = 1 per source, f_k =
// 2*f_{k-1}); the sink merges both final-layer nodes, for 2^(layers+1)
// total paths. Callers should construct the Orchestrator with
// orchestrator.WithMaxPaths(Scenario.RecommendedMaxPaths) to observe the
// explosion (the orchestrator's own default cap is 10,000, well above this
// fixture's path count).
func PathExplosion() Scenario {
	base := mustFreezeBase()

	d := dag.New()

	const width = 2
	prevLayer := make([]string, width)
	for w := 0; w < width; w++ {
		prevLayer[w] = fanInAccount(w)
		mustAddAccount(d, prevLayer[w])
	}

	for layer := 1; layer <= pathExplosionLayers; layer++ {
		curLayer := make([]string, width)
		for w := 0; w < width; w++ {
			curLayer[w] = fanInAccount(layer*width + w)
			mustAddAccount(d, curLayer[w])
		}
		for _, from := range prevLayer {
			for _, to := range curLayer {
				mustConnect(d, from, to)
			}
		}
		prevLayer = curLayer
	}

	sink := "sink"
	mustAddAccount(d, sink)
	for _, from := range prevLayer {
		mustConnect(d, from, sink)
	}

	tx := orchestrator.Transaction{
		SourceAccountID: prevLayer[0],
		TargetAccountID: sink,
		SourceMeasures: []orchestrator.MeasureSpec{{
			MeasureID:      "src",
			PrimaryPattern: ".*",
			PrimaryWeight:  mustWeight("1"),
			Bound:          mustWeight("1000000"),
		}},
	}

	return Scenario{
		Name:                "path_explosion",
		DAG:                 d,
		BaseNFA:             base,
		Transaction:         tx,
		RecommendedMaxPaths: 100,
	}
}

func mustAddAccount(d *dag.DAG, id string) {
	if err := d.AddAccount(id); err != nil {
		panic(fmt.Errorf("txnfixture: add account %q: %w", id, err))
	}
}
