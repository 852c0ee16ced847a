package orchestrator

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/lpmodel"
	"github.com/norkamer/caps/pathenum"
	"github.com/norkamer/caps/simplex"
	"github.com/norkamer/caps/taxonomy"
	"github.com/norkamer/caps/wnfa"
	"github.com/shopspring/decimal"
)

// cyclicChecker is implemented by dag.Reader implementations that can
// verify their own acyclicity invariant — in practice, only *dag.DAG.
// Validate type-asserts against it rather than widening dag.Reader itself,
// since acyclicity-checking is a property of the reference DAG
// implementation, not a requirement every Reader must satisfy.
type cyclicChecker interface {
	Validate() error
}

// Orchestrator owns the long-lived state a sequence of Validate calls
// shares: the frozen base NFA, the taxonomy, the retained pivot, and the
// transaction counter (spec.md §4.7). It must not be shared across
// goroutines without external synchronization — ValidateBatch gives each
// concurrent validation its own Orchestrator instead (spec.md §5).
type Orchestrator struct {
	mu sync.Mutex

	baseNFA *wnfa.NFA
	tax     *taxonomy.Taxonomy
	pivot   *simplex.Pivot
	txCount int

	opts  Options
	stats Stats
}

// New constructs an Orchestrator over a frozen baseNFA and an owned
// taxonomy seeded with taxonomyAlphabet (overridden by WithAlphabet, if
// given). baseNFA must already be frozen — the orchestrator never mutates
// it, only clones from it per call (spec.md §4.7's "owned base_nfa (frozen
// after initial construction)").
func New(baseNFA *wnfa.NFA, taxonomyAlphabet taxonomy.Alphabet, opts ...Option) (*Orchestrator, error) {
	if baseNFA == nil {
		return nil, ErrNilBaseNFA
	}

	o := DefaultOptions()
	o.Alphabet = taxonomyAlphabet
	for _, opt := range opts {
		opt(&o)
	}

	decimal.DivisionPrecision = int(o.DecimalPrecision)

	return &Orchestrator{
		baseNFA: baseNFA,
		tax:     taxonomy.New(o.Alphabet),
		opts:    o,
	}, nil
}

// Statistics returns a snapshot of the orchestrator's running counters.
func (o *Orchestrator) Statistics() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stats
}

// Validate runs the full state machine of spec.md §4.7 for a single
// transaction against dagReader, returning the admit/reject decision. Any
// failure along the way — taxonomy conflict, invalid pattern, path
// explosion, infeasibility, or solver error — is fail-closed: it returns
// false, increments TransactionsRejected, and reverts the taxonomy
// extension performed earlier in the same call (the documented choice;
// see DESIGN.md).
func (o *Orchestrator) Validate(ctx context.Context, tx Transaction, dagReader dag.Reader) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	// snap and count are captured before any mutation so a rollback closure
	// can always restore the taxonomy (a taxonomy.Snapshot) and the
	// transaction counter.
	snap := o.tax.Snapshot()
	count := o.txCount
	reject := func() bool {
		o.tax.Restore(snap)
		o.txCount = count
		o.stats.TransactionsRejected++
		return false
	}

	if err := ctx.Err(); err != nil {
		return reject()
	}

	// Acyclicity is a precondition of every operation downstream (path
	// enumeration treats the topology as a DAG): reject up front if
	// dagReader can check itself and reports a cycle.
	if checker, ok := dagReader.(cyclicChecker); ok {
		if err := checker.Validate(); err != nil {
			return reject()
		}
	}

	// S0/S1: extend the taxonomy with any account mentioned by the
	// transaction that it does not already know about.
	newAccounts := o.newAccountsOf(tx)
	version := o.tax.CurrentVersion()
	if len(newAccounts) > 0 {
		delta := make(map[string]rune, len(newAccounts))
		for _, acc := range newAccounts {
			delta[acc] = 0 // auto-assign
		}
		version++
		if err := o.tax.Update(delta, version); err != nil {
			return reject()
		}
	}
	o.txCount++

	// S2: clone the base NFA and add this transaction's patterns.
	txNFA, err := o.cloneTxNFA(tx)
	if err != nil {
		return reject()
	}

	// S3: enumerate DAG paths reverse from the transaction's target side,
	// classify each via txNFA, and tally final-state occupancy.
	classes, pathsExploded := o.classify(dagReader, tx, txNFA, version)
	if pathsExploded {
		o.stats.PathExplosions++
		return reject()
	}

	// S4: build the LinearProgram from whichever final states were reached.
	lp := o.buildLP(tx, txNFA, classes)

	// S5: solve, warm-starting from the retained pivot when present.
	sol, err := simplex.Solve(lp, o.pivot,
		simplex.WithTolerances(o.opts.tolerances()),
		simplex.WithMaxIterations(o.opts.MaxIterations),
	)
	if err != nil {
		return reject()
	}

	o.tallyPath(sol.PathTaken)

	// S6: decide.
	if sol.Status != simplex.Feasible {
		return reject()
	}

	retained := simplex.Pivot(sol.Values)
	o.pivot = &retained
	o.stats.TransactionsValidated++
	return true
}

// newAccountsOf returns, in a deterministic order, the account ids the
// transaction mentions that the taxonomy has not yet mapped.
func (o *Orchestrator) newAccountsOf(tx Transaction) []string {
	var out []string
	for _, id := range [...]string{tx.SourceAccountID, tx.TargetAccountID} {
		if _, err := o.tax.Lookup(id, o.tax.CurrentVersion()); err != nil {
			out = append(out, id)
		}
	}
	return out
}

// cloneTxNFA builds the transaction-scoped frozen NFA clone from every
// primary and secondary pattern named by tx's measures (spec.md §4.7 S2's
// "additional_patterns").
func (o *Orchestrator) cloneTxNFA(tx Transaction) (*wnfa.NFA, error) {
	b := o.baseNFA.CloneWith()
	for _, ms := range append(append([]MeasureSpec{}, tx.SourceMeasures...), tx.TargetMeasures...) {
		if err := b.AddWeightedRegex(ms.MeasureID, ms.PrimaryPattern, ms.PrimaryWeight); err != nil {
			return nil, fmt.Errorf("orchestrator: primary pattern %q: %w", ms.MeasureID, err)
		}
		for _, sp := range ms.SecondaryPatterns {
			if err := b.AddWeightedRegex(sp.MeasureID, sp.Pattern, sp.Weight); err != nil {
				return nil, fmt.Errorf("orchestrator: secondary pattern %q: %w", sp.MeasureID, err)
			}
		}
	}
	return b.Freeze()
}

// classify enumerates paths reverse from tx's target account and
// partitions them by the final state txNFA.Evaluate reaches, returning
// true in its second result iff enumeration exploded past max_paths.
func (o *Orchestrator) classify(reader dag.Reader, tx Transaction, txNFA *wnfa.NFA, version int) (map[wnfa.StateID]int, bool) {
	it, err := pathenum.Enumerate(reader, tx.TargetAccountID, pathenum.WithMaxPaths(o.opts.MaxPaths))
	if err != nil {
		return nil, true
	}

	classes := make(map[wnfa.StateID]int)
	for {
		p, ok, err := it.Next()
		if err != nil {
			return nil, true
		}
		if !ok {
			break
		}
		word, err := pathenum.PathToWord(p, o.tax, version)
		if err != nil {
			continue // an unmapped intermediate node: this path contributes nothing
		}
		if final, accepted := txNFA.Evaluate(word); accepted {
			classes[final]++
		}
	}
	return classes, false
}

// variableID renders a final-state id as the flux variable id the LP uses.
func variableID(id wnfa.StateID) string { return strconv.Itoa(int(id)) }

// coefficientMap collects, over every occupied final state, the weight
// registered for measureID — Cᵢ,m of spec.md §4.4 — keyed by that state's
// flux variable id.
func coefficientMap(classes map[wnfa.StateID]int, txNFA *wnfa.NFA, measureID string) lpmodel.CoefficientMap {
	out := make(lpmodel.CoefficientMap)
	for state := range classes {
		for _, wr := range txNFA.WeightsAt(state) {
			if wr.MeasureID == measureID {
				out[variableID(state)] = wr.Weight
			}
		}
	}
	return out
}

// buildLP constructs the LinearProgram of spec.md §4.4 S4: one FluxVariable
// per occupied final state, plus source/target primary and secondary
// constraints for every measure the transaction names.
func (o *Orchestrator) buildLP(tx Transaction, txNFA *wnfa.NFA, classes map[wnfa.StateID]int) *lpmodel.LinearProgram {
	lp := lpmodel.New()
	for state, count := range classes {
		if count > 0 {
			lp.AddVariable(variableID(state))
		}
	}

	for _, ms := range tx.SourceMeasures {
		coeffs := coefficientMap(classes, txNFA, ms.MeasureID)
		lp.Constraints = append(lp.Constraints,
			lpmodel.BuildSourcePrimary(ms.MeasureID+"#source_primary", coeffs, ms.Bound))
		for _, sp := range ms.SecondaryPatterns {
			scoeffs := coefficientMap(classes, txNFA, sp.MeasureID)
			lp.Constraints = append(lp.Constraints,
				lpmodel.BuildSecondary(sp.MeasureID+"#source_secondary", scoeffs))
		}
	}
	for _, ms := range tx.TargetMeasures {
		coeffs := coefficientMap(classes, txNFA, ms.MeasureID)
		lp.Constraints = append(lp.Constraints,
			lpmodel.BuildTargetPrimary(ms.MeasureID+"#target_primary", coeffs, ms.Bound))
		for _, sp := range ms.SecondaryPatterns {
			scoeffs := coefficientMap(classes, txNFA, sp.MeasureID)
			lp.Constraints = append(lp.Constraints,
				lpmodel.BuildSecondary(sp.MeasureID+"#target_secondary", scoeffs))
		}
	}
	return lp
}

// tallyPath updates the warm/cold/cross-validation counters per the path a
// successful or failed Solve actually took.
func (o *Orchestrator) tallyPath(p simplex.Path) {
	switch p {
	case simplex.PathWarm:
		o.stats.WarmStarts++
	case simplex.PathCold:
		o.stats.ColdStarts++
	case simplex.PathCrossAgree, simplex.PathCrossCold:
		o.stats.CrossValidations++
	}
}
