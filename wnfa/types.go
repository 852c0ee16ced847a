package wnfa

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors for wnfa construction and evaluation.
var (
	// ErrInvalidPattern is returned when a pattern fails to compile.
	ErrInvalidPattern = errors.New("wnfa: invalid pattern")

	// ErrFrozenNFA is returned when a structural mutation is attempted
	// after Freeze.
	ErrFrozenNFA = errors.New("wnfa: nfa is frozen")

	// ErrAlreadyFrozen is returned by Freeze when called twice.
	ErrAlreadyFrozen = errors.New("wnfa: already frozen")

	// ErrDuplicateMeasure is returned when a final state would receive a
	// second WeightedRegex for a measure_id it already carries — the
	// "one weight, one use" guard (spec.md §9).
	ErrDuplicateMeasure = errors.New("wnfa: duplicate measure_id on final state")
)

// WeightedRegex is a compiled pattern contributing a weight to one named
// measure at the final state it reaches.
type WeightedRegex struct {
	MeasureID  string
	RawPattern string
	Weight     decimal.Decimal
}

// StateID identifies a state within an NFA. A Builder assigns IDs in
// creation order starting at 0 (a CloneWith builder continues from the
// cloned parent's highest ID); Freeze renumbers the states of the frozen
// NFA from 0 in the order its subset construction discovers them. Final
// states reachable simultaneously are merged into one by Freeze, so no
// tie-break between them is needed (spec.md §4.2, §9 Open Questions).
type StateID int

// transition is a single labeled edge, already closed over any epsilon
// transitions reachable from its target at freeze time — the frozen
// automaton stores no epsilon edges (spec.md §9).
type transition struct {
	lo, hi rune // inclusive rune range
	target StateID
}

// nfaState is one state of the automaton.
type nfaState struct {
	id           StateID
	isFinal      bool
	regexWeights []WeightedRegex // non-empty iff isFinal
	measureSeen  map[string]bool // guards "one weight, one use" per state
	transitions  []transition    // frozen: already epsilon-closed
	epsilon      []StateID       // builder-only; cleared by Freeze
}
