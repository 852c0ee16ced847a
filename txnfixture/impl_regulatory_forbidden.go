package txnfixture

import (
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// RegulatoryForbidden builds spec.md §8 Scenario 5: the same alice -> bob
// topology and primary patterns as MinimalFeasible, plus a secondary
// regulatory pattern ("reg", sharing the universal ".*" pattern with weight
// 1) attached to the target measure. build_secondary forces every flux
// variable the regulatory pattern touches to zero (spec.md §4.4); since
// this fixture's only path occupies that one final state, its flux variable
// is forced to zero, and the target row 0.9*0 >= 100 is infeasible
// regardless of the source cap.
func RegulatoryForbidden() Scenario {
	base := mustFreezeBase()

	d := dag.New()
	_ = mustConnect(d, "alice", "bob")

	tx := orchestrator.Transaction{
		SourceAccountID: "alice",
		TargetAccountID: "bob",
		SourceMeasures: []orchestrator.MeasureSpec{{
			MeasureID:      "src",
			PrimaryPattern: ".*",
			PrimaryWeight:  mustWeight("1"),
			Bound:          mustWeight("150"),
		}},
		TargetMeasures: []orchestrator.MeasureSpec{{
			MeasureID:      "tgt",
			PrimaryPattern: ".*",
			PrimaryWeight:  mustWeight("0.9"),
			Bound:          mustWeight("100"),
			SecondaryPatterns: []orchestrator.SecondaryPattern{{
				MeasureID: "reg",
				Pattern:   ".*",
				Weight:    mustWeight("1"),
			}},
		}},
	}

	return Scenario{Name: "regulatory_forbidden", DAG: d, BaseNFA: base, Transaction: tx}
}
