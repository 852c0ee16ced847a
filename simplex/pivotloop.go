package simplex

import "github.com/shopspring/decimal"

// run drives t to Phase-1 optimality (or detects a numerical singularity),
// using Bland's rule throughout for both entering and leaving variable
// selection — the anti-cycling guarantee spec.md §4.6 requires. Returns the
// iteration and pivot counts consumed and, on success, nil; ErrSimplexError is
// returned (not wrapped further) on iteration-cap exceedance or a division
// below opts.DivisionFloor.
func (t *tableau) run(opts Options) (iterations, pivots int, err error) {
	for iterations = 0; iterations < opts.MaxIterations; iterations++ {
		enterCol, ok := t.blandEnteringColumn(opts.Tolerances.Feasibility)
		if !ok {
			return iterations, pivots, nil // optimal
		}

		leaveRow, ok, err := t.blandLeavingRow(enterCol, opts.DivisionFloor)
		if err != nil {
			return iterations, pivots, err
		}
		if !ok {
			// No positive entry in the entering column: per spec.md §4.6
			// this Phase-1 problem cannot be genuinely unbounded (the
			// objective is a sum of non-negative artificials, bounded
			// below by 0), so an apparently-unbounded pivot column is
			// treated as a modeling/numerical singularity.
			return iterations, pivots, ErrSimplexError
		}

		if err := t.pivot(leaveRow, enterCol, opts.DivisionFloor); err != nil {
			return iterations, pivots, err
		}
		pivots++
	}

	return iterations, pivots, ErrSimplexError
}

// blandEnteringColumn returns the smallest-index column whose z_j - c_j
// exceeds tauF, or ok=false if none exists (optimal). Increasing a nonbasic
// variable x_j by theta changes the objective by -theta*(z_j - c_j), so for
// a minimization a positive z_j - c_j is an improving direction; optimality
// is reached once every column's z_j - c_j is at or below tauF.
func (t *tableau) blandEnteringColumn(tauF decimal.Decimal) (int, bool) {
	for j := 0; j < len(t.cols); j++ {
		if t.costRow[j].GreaterThan(tauF) {
			return j, true
		}
	}
	return 0, false
}

// blandLeavingRow runs the minimum-ratio test over enterCol, breaking ties
// (per Bland's rule) by the smallest basic-variable column index.
func (t *tableau) blandLeavingRow(enterCol int, divisionFloor decimal.Decimal) (int, bool, error) {
	rhsCol := len(t.cols)
	best := -1
	var bestRatio decimal.Decimal

	for i, row := range t.rows {
		a := row[enterCol]
		if a.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if a.Abs().LessThan(divisionFloor) {
			return 0, false, ErrSimplexError
		}
		ratio := row[rhsCol].Div(a)
		switch {
		case best == -1:
			best, bestRatio = i, ratio
		case ratio.LessThan(bestRatio):
			best, bestRatio = i, ratio
		case ratio.Equal(bestRatio) && t.basis[i] < t.basis[best]:
			best = i
		}
	}

	if best == -1 {
		return 0, false, nil
	}
	return best, true, nil
}

// pivot performs Gauss-Jordan elimination around (leaveRow, enterCol):
// normalize the pivot row to a leading 1, then eliminate enterCol from
// every other row (including the cost row), exactly the shape of the
// teacher's Gaussian-elimination pivot loop.
func (t *tableau) pivot(leaveRow, enterCol int, divisionFloor decimal.Decimal) error {
	pivotVal := t.rows[leaveRow][enterCol]
	if pivotVal.Abs().LessThan(divisionFloor) {
		return ErrSimplexError
	}

	width := len(t.cols) + 1
	pr := t.rows[leaveRow]
	for j := 0; j < width; j++ {
		pr[j] = pr[j].Div(pivotVal)
	}

	for i, row := range t.rows {
		if i == leaveRow {
			continue
		}
		factor := row[enterCol]
		if factor.IsZero() {
			continue
		}
		for j := 0; j < width; j++ {
			row[j] = row[j].Sub(factor.Mul(pr[j]))
		}
	}

	factor := t.costRow[enterCol]
	if !factor.IsZero() {
		for j := 0; j < width; j++ {
			t.costRow[j] = t.costRow[j].Sub(factor.Mul(pr[j]))
		}
	}

	t.basis[leaveRow] = enterCol
	return nil
}

// extractSolution reads the current basic feasible solution into a
// variable_id -> value map, covering only original (non-slack/surplus/
// artificial) columns.
func (t *tableau) extractSolution() map[string]decimal.Decimal {
	rhsCol := len(t.cols)
	values := make(map[string]decimal.Decimal)
	for _, c := range t.cols {
		if c.kind == colOriginal {
			values[c.variable] = decimal.Zero
		}
	}
	for i, basicCol := range t.basis {
		c := t.cols[basicCol]
		if c.kind == colOriginal {
			values[c.variable] = t.rows[i][rhsCol]
		}
	}
	return values
}
