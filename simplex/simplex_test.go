package simplex

import (
	"testing"

	"github.com/norkamer/caps/lpmodel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(i int64) decimal.Decimal { return decimal.NewFromInt(i) }

func TestSolve_SimpleFeasibleLE(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("c1", lpmodel.CoefficientMap{"v1": d(1)}, d(10)),
	)

	sol, err := Solve(lp, nil)
	require.NoError(t, err)
	assert.Equal(t, Feasible, sol.Status)
	assert.True(t, sol.Values["v1"].GreaterThanOrEqual(decimal.Zero))
}

func TestSolve_InfeasibleContradiction(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("upper", lpmodel.CoefficientMap{"v1": d(1)}, d(1)),  // v1 <= 1
		lpmodel.BuildTargetPrimary("lower", lpmodel.CoefficientMap{"v1": d(1)}, d(10)), // v1 >= 10
	)

	sol, err := Solve(lp, nil)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, sol.Status)
}

func TestSolve_EqualityConstraintFeasible(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.AddVariable("v2")
	lp.Constraints = append(lp.Constraints, lpmodel.LinearConstraint{
		Name:         "eq",
		Coefficients: map[string]decimal.Decimal{"v1": d(1), "v2": d(1)},
		RHS:          d(5),
		Type:         lpmodel.EQ,
	})

	sol, err := Solve(lp, nil)
	require.NoError(t, err)
	require.Equal(t, Feasible, sol.Status)
	sum := sol.Values["v1"].Add(sol.Values["v2"])
	assert.True(t, sum.Sub(d(5)).Abs().LessThan(decimal.New(1, -9)))
}

func TestSolve_SecondaryForbiddenPatternRejectsPositiveFlow(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildTargetPrimary("needsflow", lpmodel.CoefficientMap{"v1": d(1)}, d(5)), // v1 >= 5
		lpmodel.BuildSecondary("forbidden", lpmodel.CoefficientMap{"v1": d(1)}),           // v1 <= 0
	)

	sol, err := Solve(lp, nil)
	require.NoError(t, err)
	assert.Equal(t, Infeasible, sol.Status, "v1 >= 5 and v1 <= 0 cannot both hold")
}

func TestSolve_WarmStartReusesStablePivot(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("c1", lpmodel.CoefficientMap{"v1": d(1)}, d(1000)),
	)

	oldPivot := Pivot{"v1": d(1)}
	sol, err := Solve(lp, &oldPivot)
	require.NoError(t, err)
	assert.Equal(t, Feasible, sol.Status)
	assert.Equal(t, PathWarm, sol.PathTaken)
	assert.Equal(t, 0, sol.Iterations)
}

func TestSolve_InfeasiblePivotFallsThroughToCold(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("c1", lpmodel.CoefficientMap{"v1": d(1)}, d(10)),
	)

	oldPivot := Pivot{"v1": d(1000)} // violates v1 <= 10
	sol, err := Solve(lp, &oldPivot)
	require.NoError(t, err)
	assert.Equal(t, Feasible, sol.Status)
	assert.Equal(t, PathCold, sol.PathTaken)
}

func TestSolve_UndefinedVariableIsRejectedByValidate(t *testing.T) {
	lp := lpmodel.New()
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("c1", lpmodel.CoefficientMap{"ghost": d(1)}, d(10)),
	)

	_, err := Solve(lp, nil)
	assert.ErrorIs(t, err, lpmodel.ErrUndefinedVariable)
}

func TestSolve_NoConstraintsIsTriviallyFeasible(t *testing.T) {
	lp := lpmodel.New()
	lp.AddVariable("v1")

	sol, err := Solve(lp, nil)
	require.NoError(t, err)
	assert.Equal(t, Feasible, sol.Status)
}

func TestSolve_SameClassificationRegardlessOfPivot(t *testing.T) {
	// solve(lp, pivot) must agree with solve(lp, None) on status (spec.md
	// §4.6 Contracts).
	lp := lpmodel.New()
	lp.AddVariable("v1")
	lp.Constraints = append(lp.Constraints,
		lpmodel.BuildSourcePrimary("c1", lpmodel.CoefficientMap{"v1": d(1)}, d(10)),
		lpmodel.BuildTargetPrimary("c2", lpmodel.CoefficientMap{"v1": d(1)}, d(2)),
	)

	coldSol, err := Solve(lp, nil)
	require.NoError(t, err)

	pivotVal := Pivot{"v1": d(5)}
	warmSol, err := Solve(lp, &pivotVal)
	require.NoError(t, err)

	assert.Equal(t, coldSol.Status, warmSol.Status)
}
