package txnfixture

import (
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
)

// MinimalFeasible builds spec.md §8 Scenario 1: alice -> bob, a single
// two-node path whose word lands in one final state contributing weight 1
// to measure "src" and weight 0.9 to measure "tgt" (both measures share the
// universal pattern ".*", so the one path they can both match is exactly
// this fixture's only path — taxonomy symbol assignment is auto-assigned
// per spec.md §3 and not under the fixture's control, so patterns here
// deliberately do not depend on which literal symbols alice and bob end up
// mapped to). The source cap (150) and target floor (100) leave a
// non-empty feasible interval for the flux variable ([111.11…, 150]).
func MinimalFeasible() Scenario {
	// The base NFA carries no patterns: the transaction registers "src" and
	// "tgt" itself, and the same measures already present in the base would
	// share its start state's final set and fail Freeze with
	// wnfa.ErrDuplicateMeasure.
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
		}},
	}

	return Scenario{Name: "minimal_feasible", DAG: d, BaseNFA: base, Transaction: tx}
}

// mustConnect registers both endpoints (if missing) and connects them,
// panicking on failure — fixtures are constructed once at test setup, so a
// failure here is a fixture-authoring bug, not a runtime condition callers
// need to handle.
func mustConnect(d *dag.DAG, from, to string) string {
	if err := d.AddAccount(from); err != nil {
		panic(err)
	}
	if err := d.AddAccount(to); err != nil {
		panic(err)
	}
	id, err := d.Connect(from, to, 0)
	if err != nil {
		panic(err)
	}
	return id
}
