package simplex

import (
	"errors"

	"github.com/norkamer/caps/pivot"
	"github.com/shopspring/decimal"
)

// Sentinel errors for simplex execution.
var (
	// ErrSimplexError marks a numerical singularity: a division by a
	// quantity with magnitude below the configured division floor, or an
	// iteration cap exceeded before optimality. The orchestrator treats
	// this identically to INFEASIBLE (fail-closed).
	ErrSimplexError = errors.New("simplex: numerical singularity")

	// ErrUndefinedVariable surfaces a constraint referencing a variable_id
	// absent from the program (a modeling defect upstream).
	ErrUndefinedVariable = errors.New("simplex: constraint references undefined variable")
)

// Status is the outcome classification of a Solve call.
type Status int

const (
	// Feasible means the Phase-1 objective reached zero within tolerance.
	Feasible Status = iota
	// Infeasible means Phase-1 terminated at a positive minimum: no
	// feasible point exists for the original constraints.
	Infeasible
	// Unbounded is reserved for completeness (spec.md §3 SimplexSolution);
	// a Phase-1 auxiliary problem minimizing a sum of non-negative
	// artificials is bounded below by construction, so this solver never
	// produces it — an apparently-unbounded pivot column is instead
	// treated as ErrSimplexError (see run in pivotloop.go).
	Unbounded
	// Errored marks a numerical singularity; callers see this as an error
	// return (ErrSimplexError), not as a Status value on a successful
	// return — included here only so Status has a total string form.
	Errored
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case Errored:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Path names which dispatch branch produced a Solution, for diagnostics.
type Path string

const (
	PathWarm       Path = "warm"
	PathCold       Path = "cold"
	PathCrossAgree Path = "cross-agree"
	PathCrossCold  Path = "cross-cold-authoritative"
)

// Pivot is a candidate variable assignment retained from a prior feasible
// solve; an alias of pivot.Pivot so callers never need to import both
// packages to pass one through.
type Pivot = pivot.Pivot

// Solution is the result of a Solve call.
type Solution struct {
	Status     Status
	Values     map[string]decimal.Decimal // populated iff Status == Feasible
	Iterations int
	Pivots     int
	PathTaken  Path
}

// Tolerances reuses pivot.Tolerances — τ_f and τ_g are shared constants
// between pivot classification and the simplex solver itself (spec.md
// §4.6).
type Tolerances = pivot.Tolerances

// Options configures Solve.
type Options struct {
	Tolerances    Tolerances
	MaxIterations int
	// DivisionFloor: a division by a quantity with magnitude below this
	// raises ErrSimplexError (spec.md §4.6).
	DivisionFloor decimal.Decimal
}

// DefaultOptions returns τ_f=1e-10, τ_g=1e-12, max_iterations=10,000,
// division floor=1e-15, per spec.md §4.6.
func DefaultOptions() Options {
	return Options{
		Tolerances:    pivot.DefaultTolerances(),
		MaxIterations: 10_000,
		DivisionFloor: decimal.New(1, -15),
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTolerances overrides τ_f/τ_g.
func WithTolerances(t Tolerances) Option {
	return func(o *Options) { o.Tolerances = t }
}

// WithMaxIterations overrides the iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithDivisionFloor overrides the division-floor guard.
func WithDivisionFloor(d decimal.Decimal) Option {
	return func(o *Options) {
		if d.IsPositive() {
			o.DivisionFloor = d
		}
	}
}
