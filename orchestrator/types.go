package orchestrator

import (
	"errors"

	"github.com/norkamer/caps/pivot"
	"github.com/norkamer/caps/taxonomy"
	"github.com/shopspring/decimal"
)

// Sentinel errors for orchestrator construction.
var (
	// ErrNilBaseNFA is returned by New when baseNFA is nil.
	ErrNilBaseNFA = errors.New("orchestrator: base NFA must not be nil")
)

// SecondaryPattern is one regulatory/forbidden-pattern contribution: a
// weighted regex whose final states feed a build_secondary constraint
// (spec.md §4.4) rather than the primary source/target bound.
type SecondaryPattern struct {
	MeasureID string
	Pattern   string
	Weight    decimal.Decimal
}

// MeasureSpec is one entry of a Transaction's source_measures or
// target_measures list (spec.md §6): a primary weighted pattern plus zero
// or more secondary (regulatory) patterns sharing the same flow variables.
// Bound is the primary constraint's right-hand side — acceptable_value for
// a source measure (the flow must not exceed it) or required_value for a
// target measure (the flow must reach at least it).
type MeasureSpec struct {
	MeasureID         string
	PrimaryPattern    string
	PrimaryWeight     decimal.Decimal
	Bound             decimal.Decimal
	SecondaryPatterns []SecondaryPattern
}

// Transaction is the record Validate consumes (spec.md §6): the proposed
// edge's endpoints plus the measures whose patterns must be compiled into
// the transaction-scoped NFA clone and whose resulting flow variables feed
// the constraint builders.
type Transaction struct {
	SourceAccountID string
	TargetAccountID string
	SourceMeasures  []MeasureSpec
	TargetMeasures  []MeasureSpec
}

// Stats mirrors spec.md §6's statistics() record.
type Stats struct {
	TransactionsValidated int
	TransactionsRejected  int
	WarmStarts            int
	ColdStarts            int
	CrossValidations      int
	PathExplosions        int
}

// TiebreakOrder names an order for simultaneously-reachable final states.
// wnfa.Builder.Freeze merges such states into one, so wnfa.NFA.Evaluate
// never has to choose between them; the value is stored in Options but
// Validate does not consult it. The option exists so
// WithFinalStateTiebreak is a configuration knob spec.md §6 names (see
// DESIGN.md Open Questions).
type TiebreakOrder int

const (
	// TiebreakSmallestStateID names ascending-StateID order; it is the only
	// defined value.
	TiebreakSmallestStateID TiebreakOrder = iota
)

// Options configures an Orchestrator (spec.md §6's configuration table).
type Options struct {
	// Alphabet seeds the owned taxonomy. Defaults to
	// taxonomy.PrintableASCIIAlphabet() when not supplied via New's
	// taxonomyAlphabet parameter or WithAlphabet.
	Alphabet taxonomy.Alphabet

	// MaxPaths is pathenum's enumeration explosion cap.
	MaxPaths int

	// BatchSize tunes enumeration throughput only; spec.md §6 documents it
	// as having no semantic effect, so it is carried here for interface
	// completeness but never consulted by Validate.
	BatchSize int

	// MaxIterations is simplex's iteration cap before ErrSimplexError.
	MaxIterations int

	// FeasibilityTolerance / GeometricTolerance are τ_f / τ_g, shared by
	// pivot classification and the simplex tableau.
	FeasibilityTolerance decimal.Decimal
	GeometricTolerance   decimal.Decimal

	// DecimalPrecision sets decimal.DivisionPrecision package-wide (spec.md
	// §6's decimal_precision, default 28).
	DecimalPrecision int32

	// HighlyStableThreshold / ModeratelyStableThreshold are the pivot
	// stability-score cutoffs (default 0.9 / 0.5).
	HighlyStableThreshold     decimal.Decimal
	ModeratelyStableThreshold decimal.Decimal

	// FinalStateTiebreak names the tie-break order; see TiebreakOrder.
	FinalStateTiebreak TiebreakOrder
}

// DefaultOptions returns spec.md §6's documented defaults.
func DefaultOptions() Options {
	return Options{
		Alphabet:                  taxonomy.PrintableASCIIAlphabet(),
		MaxPaths:                  10_000,
		BatchSize:                 256,
		MaxIterations:             10_000,
		FeasibilityTolerance:      decimal.New(1, -10),
		GeometricTolerance:        decimal.New(1, -12),
		DecimalPrecision:          28,
		HighlyStableThreshold:     decimal.NewFromFloat(0.9),
		ModeratelyStableThreshold: decimal.NewFromFloat(0.5),
		FinalStateTiebreak:        TiebreakSmallestStateID,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithAlphabet overrides the taxonomy's alphabet.
func WithAlphabet(a taxonomy.Alphabet) Option {
	return func(o *Options) { o.Alphabet = a }
}

// WithMaxPaths overrides the enumeration explosion cap. 0 is honored
// (spec.md §8 boundary: max_paths = 0 explodes on any non-trivial
// transaction).
func WithMaxPaths(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxPaths = n
		}
	}
}

// WithBatchSize overrides the (semantically inert) enumeration batch size.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.BatchSize = n
		}
	}
}

// WithMaxIterations overrides the simplex iteration cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithFeasibilityTolerance overrides τ_f.
func WithFeasibilityTolerance(d decimal.Decimal) Option {
	return func(o *Options) { o.FeasibilityTolerance = d }
}

// WithGeometricTolerance overrides τ_g.
func WithGeometricTolerance(d decimal.Decimal) Option {
	return func(o *Options) { o.GeometricTolerance = d }
}

// WithDecimalPrecision sets decimal.DivisionPrecision process-wide.
func WithDecimalPrecision(p int32) Option {
	return func(o *Options) {
		if p > 0 {
			o.DecimalPrecision = p
		}
	}
}

// WithStabilityThresholds overrides the pivot stability-score cutoffs.
func WithStabilityThresholds(highlyStable, moderatelyStable decimal.Decimal) Option {
	return func(o *Options) {
		o.HighlyStableThreshold = highlyStable
		o.ModeratelyStableThreshold = moderatelyStable
	}
}

// WithFinalStateTiebreak names the tie-break order; see TiebreakOrder.
func WithFinalStateTiebreak(order TiebreakOrder) Option {
	return func(o *Options) { o.FinalStateTiebreak = order }
}

// tolerances collects Options into the pivot.Tolerances shape shared by
// classification and the simplex tableau.
func (o Options) tolerances() pivot.Tolerances {
	return pivot.Tolerances{
		Feasibility:               o.FeasibilityTolerance,
		Geometric:                 o.GeometricTolerance,
		HighlyStableThreshold:     o.HighlyStableThreshold,
		ModeratelyStableThreshold: o.ModeratelyStableThreshold,
	}
}
