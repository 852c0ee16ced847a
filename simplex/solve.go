package simplex

import (
	"fmt"

	"github.com/norkamer/caps/lpmodel"
)

// solveCold runs cold-start Phase-1 from the origin/artificial basis.
func solveCold(lp *lpmodel.LinearProgram, opts Options) (*Solution, error) {
	t, err := coldTableau(lp)
	if err != nil {
		return nil, err
	}

	iterations, pivots, err := t.run(opts)
	if err != nil {
		return nil, err
	}

	sol := &Solution{Iterations: iterations, Pivots: pivots, PathTaken: PathCold}
	if t.objectiveValue().Abs().LessThanOrEqual(opts.Tolerances.Feasibility) {
		sol.Status = Feasible
		sol.Values = t.extractSolution()
	} else {
		sol.Status = Infeasible
	}
	return sol, nil
}

// Solve runs the triple-validation dispatch of spec.md §4.6: a supplied
// oldPivot is classified via the pivot package and, if stable, attempted as
// a warm start before falling back to (or cross-validating against) a cold
// solve built from scratch. lp.Validate is run first, and a validation
// failure is returned wrapped, before any solve is attempted.
func Solve(lp *lpmodel.LinearProgram, oldPivot *Pivot, opts ...Option) (*Solution, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := lp.Validate(); err != nil {
		return nil, fmt.Errorf("simplex: %w", err)
	}

	if oldPivot == nil {
		return solveCold(lp, o)
	}

	class := classifyPivot(*oldPivot, lp, o.Tolerances)

	switch class {
	case classHighlyStable, classModeratelyStable:
		if warm, ok := tryWarmStart(lp, *oldPivot, o); ok {
			return warm, nil
		}
		return solveCold(lp, o)

	case classGeometricallyUnstable:
		warm, warmOK := tryWarmStart(lp, *oldPivot, o)
		cold, err := solveCold(lp, o)
		if err != nil {
			return nil, err
		}
		if warmOK && warm.Status == cold.Status {
			cold.PathTaken = PathCrossAgree
			return cold, nil
		}
		cold.PathTaken = PathCrossCold
		return cold, nil

	default: // classInfeasible: pivot itself violates a constraint
		return solveCold(lp, o)
	}
}
