package txnfixture

import (
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// WarmStartPair builds spec.md §8 Scenario 3: MinimalFeasible run first,
// then a second transaction over the same alice->bob edge whose LP differs
// only in a looser target bound (>= 90 instead of >= 100). Both
// Transactions share one DAG and base NFA so the pair can be fed to the
// same Orchestrator in sequence, exercising the retained pivot from the
// first call as the warm-start seed for the second.
func WarmStartPair() (first, second Scenario) {
	base := mustFreezeBase()

	d := dag.New()
	_ = mustConnect(d, "alice", "bob")

	sourceMeasure := orchestrator.MeasureSpec{
		MeasureID:      "src",
		PrimaryPattern: ".*",
		PrimaryWeight:  mustWeight("1"),
		Bound:          mustWeight("150"),
	}

	first = Scenario{
		Name:    "warm_start_first",
		DAG:     d,
		BaseNFA: base,
		Transaction: orchestrator.Transaction{
			SourceAccountID: "alice",
			TargetAccountID: "bob",
			SourceMeasures:  []orchestrator.MeasureSpec{sourceMeasure},
			TargetMeasures: []orchestrator.MeasureSpec{{
				MeasureID:      "tgt",
				PrimaryPattern: ".*",
				PrimaryWeight:  mustWeight("0.9"),
				Bound:          mustWeight("100"),
			}},
		},
	}

	second = Scenario{
		Name:    "warm_start_second",
		DAG:     d,
		BaseNFA: base,
		Transaction: orchestrator.Transaction{
			SourceAccountID: "alice",
			TargetAccountID: "bob",
			SourceMeasures:  []orchestrator.MeasureSpec{sourceMeasure},
			TargetMeasures: []orchestrator.MeasureSpec{{
				MeasureID:      "tgt",
				PrimaryPattern: ".*",
				PrimaryWeight:  mustWeight("0.9"),
				Bound:          mustWeight("90"),
			}},
		},
	}

	return first, second
}
