// Package wnfa implements an anchored weighted non-deterministic finite
// automaton: a classifier that maps strings produced by walking DAG paths
// into equivalence classes, each carrying a set of weighted contributions
// per named measure.
//
// Every pattern registered with a wnfa automaton is anchored to the end of
// the input: acceptance requires the entire string to be consumed, never a
// prefix or substring. A Builder accumulates patterns via AddWeightedRegex
// until Freeze produces an immutable NFA; evaluating a frozen NFA on the
// same input always yields the same final state (or none), because the
// frozen contract forbids any further structural mutation.
//
// Patterns are parsed with the standard library's regexp/syntax package
// (the same AST walked by Go's own regexp engine) and compiled into states
// by hand via Thompson's construction, rather than delegated to regexp's
// own matcher, because the automaton here needs addressable final states
// with attached weights and a frozen, inspectable transition table — not
// merely a yes/no match.
package wnfa
