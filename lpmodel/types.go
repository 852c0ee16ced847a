package lpmodel

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors for lpmodel construction and validation.
var (
	// ErrUndefinedVariable is returned when a constraint references a
	// variable_id absent from the program's variable map.
	ErrUndefinedVariable = errors.New("lpmodel: constraint references undefined variable")

	// ErrNonFiniteCoefficient names a NaN-like coefficient, bound, or RHS.
	// No function in this module returns it: decimal.Decimal has no
	// intrinsic NaN, and Validate rejects any coefficient whose magnitude
	// exceeds the configured cap instead, see ErrCoefficientTooLarge.
	ErrNonFiniteCoefficient = errors.New("lpmodel: non-finite coefficient")

	// ErrCoefficientTooLarge is returned when a coefficient magnitude
	// exceeds the configured cap.
	ErrCoefficientTooLarge = errors.New("lpmodel: coefficient magnitude exceeds cap")

	// ErrNegativeLowerBound names a flux variable lower bound below zero.
	// No function in this module returns it: FluxVariable has no lower-bound
	// field, its lower bound is fixed at 0 (spec.md §3).
	ErrNegativeLowerBound = errors.New("lpmodel: flux variable lower bound must be 0")
)

// ConstraintType names the relational operator of a LinearConstraint.
type ConstraintType int

const (
	// LE is "<=".
	LE ConstraintType = iota
	// GE is ">=".
	GE
	// EQ is "=".
	EQ
)

func (t ConstraintType) String() string {
	switch t {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// FluxVariable is one flow variable, keyed by the final_state_id of the
// NFA equivalence class it represents. Its lower bound is always 0
// (non-negativity); UpperBound is optional (nil means unbounded above).
type FluxVariable struct {
	VariableID string
	UpperBound *decimal.Decimal
	Value      decimal.Decimal
}

// LinearConstraint is ∑ᵢ Coefficients[i]·vᵢ OP RHS.
type LinearConstraint struct {
	Name         string
	Coefficients map[string]decimal.Decimal
	RHS          decimal.Decimal
	Type         ConstraintType
}

// LinearProgram is the variables-by-id map plus an ordered constraint list
// the simplex solver consumes.
type LinearProgram struct {
	Variables   map[string]*FluxVariable
	Constraints []LinearConstraint

	// MaxCoefficientMagnitude bounds the absolute value Validate accepts
	// for any single coefficient or RHS; exceeding it is almost always a
	// unit-confusion bug upstream rather than a legitimate constraint.
	MaxCoefficientMagnitude decimal.Decimal
}

// defaultMaxCoefficientMagnitude is generous enough to never reject a
// legitimate ledger quantity while still catching obvious overflow bugs.
func defaultMaxCoefficientMagnitude() decimal.Decimal {
	return decimal.New(1, 30)
}

// New creates an empty LinearProgram with the default coefficient cap.
func New() *LinearProgram {
	return &LinearProgram{
		Variables:               make(map[string]*FluxVariable),
		MaxCoefficientMagnitude: defaultMaxCoefficientMagnitude(),
	}
}

// AddVariable registers a flux variable for stateID if not already present,
// and returns it either way.
func (lp *LinearProgram) AddVariable(stateID string) *FluxVariable {
	if v, ok := lp.Variables[stateID]; ok {
		return v
	}
	v := &FluxVariable{VariableID: stateID}
	lp.Variables[stateID] = v
	return v
}
