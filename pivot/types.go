package pivot

import "github.com/shopspring/decimal"

// Classification is the outcome of classifying a retained pivot against a
// new set of linear constraints.
type Classification int

const (
	// HighlyStable means every new constraint is satisfied with ample
	// geometric margin; warm-start alone is trusted.
	HighlyStable Classification = iota
	// ModeratelyStable means the margin is positive but thinner; warm-start
	// alone is still trusted.
	ModeratelyStable
	// GeometricallyUnstable means the pivot is feasible but close enough to
	// a constraint boundary that warm-start and cold-start must both run
	// and be cross-validated.
	GeometricallyUnstable
	// Infeasible means the pivot itself violates a new constraint beyond
	// feasibility tolerance; warm-start is skipped entirely.
	Infeasible
)

func (c Classification) String() string {
	switch c {
	case HighlyStable:
		return "HIGHLY_STABLE"
	case ModeratelyStable:
		return "MODERATELY_STABLE"
	case GeometricallyUnstable:
		return "GEOMETRICALLY_UNSTABLE"
	case Infeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// Pivot is a candidate variable assignment (variable_id -> value) retained
// from a prior feasible solve, used to seed a warm-start attempt.
type Pivot map[string]decimal.Decimal

// Tolerances bundles the feasibility and geometric tolerances classify
// needs; both default per spec.md §4.5/§4.6. HighlyStableThreshold and
// ModeratelyStableThreshold are the stability-score cutoffs (configurable
// per spec.md §6's stability_thresholds option; 0.9/0.5 are the normative
// defaults).
type Tolerances struct {
	Feasibility decimal.Decimal // τ_f, default 1e-10
	Geometric   decimal.Decimal // τ_g, default 1e-12

	HighlyStableThreshold     decimal.Decimal // default 0.9
	ModeratelyStableThreshold decimal.Decimal // default 0.5
}

// DefaultTolerances returns τ_f = 1e-10, τ_g = 1e-12, and the normative
// 0.9/0.5 stability cutoffs.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Feasibility:               decimal.New(1, -10),
		Geometric:                 decimal.New(1, -12),
		HighlyStableThreshold:     decimal.NewFromFloat(0.9),
		ModeratelyStableThreshold: decimal.NewFromFloat(0.5),
	}
}
