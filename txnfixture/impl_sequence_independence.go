package txnfixture

import (
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// SequenceIndependencePair builds spec.md §8 Scenario 6: two transactions
// over disjoint accounts (alice -> bob, carol -> dave), sharing one base
// NFA but each carrying its own DAG so neither's taxonomy assignment can
// influence the other's path enumeration. Validating them through the same
// Orchestrator in either order must produce the same pair of decisions:
// nothing about feasibility here depends on taxonomy symbol assignment
// order, only on each transaction's own topology and measures.
func SequenceIndependencePair() (first, second Scenario) {
	base := mustFreezeBase()

	firstDAG := dag.New()
	_ = mustConnect(firstDAG, "alice", "bob")

	secondDAG := dag.New()
	_ = mustConnect(secondDAG, "carol", "dave")

	sourceMeasure := orchestrator.MeasureSpec{
		MeasureID:      "src",
		PrimaryPattern: ".*",
		PrimaryWeight:  mustWeight("1"),
		Bound:          mustWeight("150"),
	}
	targetMeasure := orchestrator.MeasureSpec{
		MeasureID:      "tgt",
		PrimaryPattern: ".*",
		PrimaryWeight:  mustWeight("0.9"),
		Bound:          mustWeight("100"),
	}

	first = Scenario{
		Name:    "sequence_independence_a",
		DAG:     firstDAG,
		BaseNFA: base,
		Transaction: orchestrator.Transaction{
			SourceAccountID: "alice",
			TargetAccountID: "bob",
			SourceMeasures:  []orchestrator.MeasureSpec{sourceMeasure},
			TargetMeasures:  []orchestrator.MeasureSpec{targetMeasure},
		},
	}

	second = Scenario{
		Name:    "sequence_independence_c",
		DAG:     secondDAG,
		BaseNFA: base,
		Transaction: orchestrator.Transaction{
			SourceAccountID: "carol",
			TargetAccountID: "dave",
			SourceMeasures:  []orchestrator.MeasureSpec{sourceMeasure},
			TargetMeasures:  []orchestrator.MeasureSpec{targetMeasure},
		},
	}

	return first, second
}
