package lpmodel

import "github.com/shopspring/decimal"

// CoefficientMap is Cᵢ,m — the weight of the WeightedRegex tagged with
// measure m at final state i, or the zero decimal if state i carries no
// weight for that measure (spec.md §4.4).
type CoefficientMap map[string]decimal.Decimal

// BuildSourcePrimary produces ∑ᵢ Cᵢ,m·fᵢ <= requiredValueSrc.
func BuildSourcePrimary(name string, coeffs CoefficientMap, requiredValueSrc decimal.Decimal) LinearConstraint {
	return LinearConstraint{
		Name:         name,
		Coefficients: cloneCoeffs(coeffs),
		RHS:          requiredValueSrc,
		Type:         LE,
	}
}

// BuildTargetPrimary produces ∑ᵢ Cᵢ,m·fᵢ >= requiredValueTgt.
func BuildTargetPrimary(name string, coeffs CoefficientMap, requiredValueTgt decimal.Decimal) LinearConstraint {
	return LinearConstraint{
		Name:         name,
		Coefficients: cloneCoeffs(coeffs),
		RHS:          requiredValueTgt,
		Type:         GE,
	}
}

// BuildSecondary produces the regulatory "forbidden-pattern" constraint
// ∑ᵢ Cᵢ,m·fᵢ <= 0.
func BuildSecondary(name string, coeffs CoefficientMap) LinearConstraint {
	return LinearConstraint{
		Name:         name,
		Coefficients: cloneCoeffs(coeffs),
		RHS:          decimal.Zero,
		Type:         LE,
	}
}

func cloneCoeffs(in CoefficientMap) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
