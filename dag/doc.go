// Package dag adapts github.com/norkamer/caps/core's Graph into the
// narrow DAG-reader contract the validation pipeline consumes: node
// existence, source detection, and reverse (incoming-edge) traversal.
//
// The production account/transaction ledger — accounts, balances, commit
// and rollback — lives outside this module (spec.md §1 "DAG mutation/commit
// layer"). DAG exists so pathenum and orchestrator have a concrete,
// independently testable implementation of that external contract, built
// the way the rest of this repository builds graph-backed components: a
// thin, directed-only configuration of core.Graph plus a reverse-adjacency
// index, with acyclicity checked via dfs.DetectCycles and enforced by
// orchestrator.Validate as a precondition before any path enumeration runs.
package dag
