package pivot

import (
	"github.com/norkamer/caps/lpmodel"
	"github.com/shopspring/decimal"
)

// epsNormZero guards the norm division against a zero (or near-zero)
// coefficient vector, per spec.md §4.5 ("use a small epsilon to avoid
// division by zero; if ||a|| ≈ 0, skip").
var epsNormZero = decimal.New(1, -15)

// Classify scores oldPivot against constraints and returns the
// classification spec.md §4.5 defines. An empty constraints slice is
// vacuously HighlyStable — there is nothing to be unstable against.
func Classify(oldPivot Pivot, constraints []lpmodel.LinearConstraint, tol Tolerances) Classification {
	if len(constraints) == 0 {
		return HighlyStable
	}

	var distances []decimal.Decimal
	for _, c := range constraints {
		norm := coefficientNorm(c.Coefficients)
		if norm.LessThanOrEqual(epsNormZero) {
			continue // ||a|| ≈ 0: skip, per spec.md §4.5
		}

		dotProduct := dot(c.Coefficients, oldPivot)
		signedDistance := c.RHS.Sub(dotProduct).Div(norm)

		if violatesConstraint(c.Type, signedDistance, tol.Feasibility) {
			return Infeasible
		}

		distances = append(distances, signedDistance.Abs())
	}

	if len(distances) == 0 {
		return HighlyStable
	}

	highThreshold := tol.HighlyStableThreshold
	modThreshold := tol.ModeratelyStableThreshold
	if highThreshold.IsZero() && modThreshold.IsZero() {
		// Zero-value Tolerances (constructed without DefaultTolerances): fall
		// back to the normative cutoffs rather than classifying everything
		// as unstable.
		highThreshold = decimal.NewFromFloat(0.9)
		modThreshold = decimal.NewFromFloat(0.5)
	}

	score := stabilityScore(distances, tol.Geometric)
	switch {
	case score.GreaterThan(highThreshold):
		return HighlyStable
	case score.GreaterThan(modThreshold):
		return ModeratelyStable
	default:
		return GeometricallyUnstable
	}
}

// violatesConstraint reports whether signedDistance (b - a·pivot, divided by
// ||a||) indicates a feasibility-tolerance-exceeding violation of c's
// relational operator. For LE/EQ the pivot must not overshoot the RHS
// (signedDistance must not be very negative); for GE it must not undershoot
// (signedDistance must not be very positive beyond tolerance in the
// opposite sense). signedDistance is defined identically regardless of
// type, as (b - a·pivot)/||a||, so the violating sign flips with the
// operator's direction.
func violatesConstraint(t lpmodel.ConstraintType, signedDistance, tauF decimal.Decimal) bool {
	switch t {
	case lpmodel.LE:
		return signedDistance.LessThan(tauF.Neg())
	case lpmodel.GE:
		return signedDistance.GreaterThan(tauF)
	case lpmodel.EQ:
		return signedDistance.Abs().GreaterThan(tauF)
	default:
		return false
	}
}

// coefficientNorm is the Euclidean norm of a constraint's coefficient
// vector.
func coefficientNorm(coeffs map[string]decimal.Decimal) decimal.Decimal {
	sumSquares := decimal.Zero
	for _, c := range coeffs {
		sumSquares = sumSquares.Add(c.Mul(c))
	}
	return sqrt(sumSquares)
}

// dot computes a·pivot over the variable ids present in coeffs; a pivot
// missing a variable contributes 0 (the variable is implicitly at its
// default, which for a flux variable is the origin).
func dot(coeffs map[string]decimal.Decimal, pivot Pivot) decimal.Decimal {
	sum := decimal.Zero
	for varID, c := range coeffs {
		if v, ok := pivot[varID]; ok {
			sum = sum.Add(c.Mul(v))
		}
	}
	return sum
}

// sqrtIterations bounds Newton's method to a fixed number of refinements;
// at decimal.DivisionPrecision digits, convergence is reached well before
// this bound for any input a geometric-distance computation will see.
const sqrtIterations = 60

// sqrt computes a non-negative square root by Newton's method on
// decimal.Decimal, since the library has no native arbitrary-precision
// root operation. x_{n+1} = (x_n + d/x_n) / 2, seeded at max(d, 1) which
// guarantees convergence from above for any d > 0.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() || d.IsNegative() {
		return decimal.Zero
	}

	two := decimal.NewFromInt(2)
	x := d
	if x.LessThan(decimal.NewFromInt(1)) {
		x = decimal.NewFromInt(1)
	}

	for i := 0; i < sqrtIterations; i++ {
		next := x.Add(d.Div(x)).Div(two)
		if next.Sub(x).Abs().LessThan(decimal.New(1, -27)) {
			return next
		}
		x = next
	}
	return x
}

// stabilityScore implements 0.7·clip(min_d/τg,0,1) + 0.3·clip(avg_d/τg,0,1).
func stabilityScore(distances []decimal.Decimal, tauG decimal.Decimal) decimal.Decimal {
	minD := distances[0]
	sum := decimal.Zero
	for _, d := range distances {
		if d.LessThan(minD) {
			minD = d
		}
		sum = sum.Add(d)
	}
	avgD := sum.Div(decimal.NewFromInt(int64(len(distances))))

	minTerm := clip01(minD.Div(tauG))
	avgTerm := clip01(avgD.Div(tauG))

	return minTerm.Mul(decimal.NewFromFloat(0.7)).Add(avgTerm.Mul(decimal.NewFromFloat(0.3)))
}

func clip01(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if d.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return d
}
