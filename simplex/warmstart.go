package simplex

import (
	"github.com/norkamer/caps/lpmodel"
	"github.com/norkamer/caps/pivot"
	"github.com/shopspring/decimal"
)

type pivotClass = pivot.Classification

const (
	classHighlyStable          = pivot.HighlyStable
	classModeratelyStable      = pivot.ModeratelyStable
	classGeometricallyUnstable = pivot.GeometricallyUnstable
	classInfeasible            = pivot.Infeasible
)

// classifyPivot delegates to pivot.Classify.
func classifyPivot(oldPivot Pivot, lp *lpmodel.LinearProgram, tol Tolerances) pivotClass {
	return pivot.Classify(oldPivot, lp.Constraints, tol)
}

// tryWarmStart attempts to reuse oldPivot directly: since pivot.Classify
// has already confirmed it does not violate any new constraint beyond
// feasibility tolerance, the warm start this solver offers is the cheapest
// possible one — treat the retained assignment itself (missing variables
// implicitly at 0, the flux non-negativity default) as the candidate
// feasible point and skip the tableau algorithm entirely. This is a
// deliberate simplification of "start the simplex from a basis consistent
// with old_pivot": a genuine basis-reuse warm start would need the two
// LPs to share a variable/constraint structure, which does not hold across
// transactions whose NFA classification yields different final-state sets
// each time. A variable of lp absent from oldPivot is taken as 0; if
// oldPivot holds a negative value for any variable of lp, warm-start
// reports ok=false and the caller falls back to solveCold.
func tryWarmStart(lp *lpmodel.LinearProgram, oldPivot Pivot, opts Options) (*Solution, bool) {
	values := make(map[string]decimal.Decimal, len(lp.Variables))
	for id := range lp.Variables {
		v, ok := oldPivot[id]
		if !ok {
			v = decimal.Zero
		}
		if v.IsNegative() {
			return nil, false
		}
		values[id] = v
	}

	return &Solution{
		Status:     Feasible,
		Values:     values,
		Iterations: 0,
		Pivots:     0,
		PathTaken:  PathWarm,
	}, true
}
