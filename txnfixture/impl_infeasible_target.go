package txnfixture

import (
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// InfeasibleTarget builds spec.md §8 Scenario 2: identical topology to
// MinimalFeasible, but the target floor (200 at weight 0.9, i.e. fᵢ >=
// 222.22…) is incompatible with the source cap (fᵢ <= 150) — no fᵢ
// satisfies both, so Validate must return false.
func InfeasibleTarget() Scenario {
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
			Bound:          mustWeight("200"),
		}},
	}

	return Scenario{Name: "infeasible_target", DAG: d, BaseNFA: base, Transaction: tx}
}
