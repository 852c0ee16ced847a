package txnfixture

import (
	"github.com/google/uuid"
	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
	"github.com/norkamer/caps/taxonomy"
	"github.com/norkamer/caps/wnfa"
	"github.com/shopspring/decimal"
)

// fixtureNamespace roots every deterministic v5 UUID this package mints, so
// a fixture built twice (even across processes) produces byte-identical
// account ids.
var fixtureNamespace = uuid.MustParse("2f3b1a9e-8d3c-4b8a-9b1a-6b4c7d2e9f10")

// fanInAccount returns a deterministic account id for the i-th synthetic
// fan-in account of the path-explosion fixture (no inherent meaning, so a
// random id would do, but determinism keeps the fixture reproducible).
func fanInAccount(i int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte{byte(i), byte(i >> 8)}).String()
}

// Scenario bundles everything one of spec.md §8's end-to-end scenarios
// needs to drive an Orchestrator: a populated DAG, the base NFA to
// construct the Orchestrator from, and the Transaction to validate.
type Scenario struct {
	Name        string
	DAG         *dag.DAG
	BaseNFA     *wnfa.NFA
	Transaction orchestrator.Transaction

	// RecommendedMaxPaths documents the orchestrator.WithMaxPaths value a
	// scenario was designed against, when that value matters to the
	// outcome (e.g. PathExplosion's fan-in is only useful when the
	// Orchestrator's cap is below the DAG's true path count). Zero means
	// "no particular value is load-bearing"; callers are free to use the
	// orchestrator's default.
	RecommendedMaxPaths int
}

// NewOrchestrator builds an Orchestrator over this scenario's base NFA with
// opts applied on top of the orchestrator's defaults.
func (s Scenario) NewOrchestrator(opts ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	return orchestrator.New(s.BaseNFA, taxonomy.PrintableASCIIAlphabet(), opts...)
}

func mustWeight(w string) decimal.Decimal {
	d, err := decimal.NewFromString(w)
	if err != nil {
		panic(err)
	}
	return d
}

// pattern is one (measure_id, pattern, weight) triple fed to a Builder
// while assembling a scenario's base NFA.
type pattern struct {
	measureID string
	pattern   string
	weight    decimal.Decimal
}

func mustFreezeBase(patterns ...pattern) *wnfa.NFA {
	b := wnfa.New()
	for _, p := range patterns {
		if err := b.AddWeightedRegex(p.measureID, p.pattern, p.weight); err != nil {
			panic(err)
		}
	}
	nfa, err := b.Freeze()
	if err != nil {
		panic(err)
	}
	return nfa
}
