package lpmodel

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate checks every constraint references defined variables and that no
// coefficient or RHS exceeds MaxCoefficientMagnitude. It is a fail-fast pass
// run once before the constructed program is handed to the simplex solver,
// in the same spirit as the teacher's matrix.Validate* helpers: collect
// nothing, stop at the first violation.
func (lp *LinearProgram) Validate() error {
	limit := lp.MaxCoefficientMagnitude
	if limit.IsZero() {
		limit = defaultMaxCoefficientMagnitude()
	}

	for _, c := range lp.Constraints {
		if err := validateMagnitude(c.RHS, limit); err != nil {
			return fmt.Errorf("lpmodel: constraint %q RHS: %w", c.Name, err)
		}
		for varID, coeff := range c.Coefficients {
			if _, ok := lp.Variables[varID]; !ok {
				return fmt.Errorf("lpmodel: constraint %q: %w: %q", c.Name, ErrUndefinedVariable, varID)
			}
			if err := validateMagnitude(coeff, limit); err != nil {
				return fmt.Errorf("lpmodel: constraint %q coefficient %q: %w", c.Name, varID, err)
			}
		}
	}

	for id, v := range lp.Variables {
		if v.UpperBound != nil {
			if err := validateMagnitude(*v.UpperBound, limit); err != nil {
				return fmt.Errorf("lpmodel: variable %q upper bound: %w", id, err)
			}
		}
	}

	return nil
}

func validateMagnitude(d, limit decimal.Decimal) error {
	if d.Abs().GreaterThan(limit) {
		return fmt.Errorf("%w: |%s| > %s", ErrCoefficientTooLarge, d.String(), limit.String())
	}
	return nil
}
