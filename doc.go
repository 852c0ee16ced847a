// Package caps validates proposed economic transactions against a body of
// weighted pattern-based constraints with formal mathematical guarantees.
//
// Given a DAG of accounts and previously accepted transactions, a proposed
// transaction is admitted only if a flow-counting problem derived from it is
// linearly feasible under source, target, and regulatory constraints. The
// pipeline is three layers deep:
//
//	taxonomy/     — versioned, append-only account_id -> alphabet-symbol map
//	dag/          — DAG reader contract + reference core.Graph adapter
//	wnfa/         — anchored weighted finite automaton (pattern classification)
//	pathenum/     — reverse path enumeration from a transaction edge to sources
//	lpmodel/      — flow variables, constraints, and the linear program they form
//	pivot/        — geometric stability classification of a retained pivot
//	simplex/      — triple-validation Phase-1 simplex feasibility solver
//	orchestrator/ — glues all of the above into a single Validate(tx) bool call
//
// Supporting packages kept from the graph substrate this module is built on:
//
//	core/ — thread-safe in-memory Graph/Vertex/Edge primitives
//	bfs/  — breadth-first traversal (reused for cheap path-count estimation)
//	dfs/  — cycle detection (DAG acyclicity checking)
//
// and one ambient package:
//
//	txnfixture/ — deterministic transaction/DAG fixtures for tests and demos
//
// A single validate(tx) call: the taxonomy is extended with any new
// accounts at the current version; a transaction-scoped NFA is cloned from
// the orchestrator's base NFA with transaction-specific patterns added and
// frozen; paths are enumerated from the candidate transaction edge reverse
// toward DAG sources; each path is converted to a word and classified by
// the frozen NFA into equivalence classes; a linear program is built with
// one flow variable per non-empty class; the simplex is run with the
// retained pivot, if any. FEASIBLE retains the new pivot and returns true;
// anything else returns false and leaves prior state untouched.
//
//	go get github.com/norkamer/caps
package caps
