// Package orchestrator glues the taxonomy, wnfa, pathenum, lpmodel, pivot,
// and simplex packages into a single per-transaction decision: Validate
// extends the taxonomy for any new accounts, clones and freezes a
// transaction-scoped NFA, enumerates and classifies DAG paths, builds a
// LinearProgram from the resulting equivalence classes, and solves it,
// retaining the solution pivot on success.
//
// The orchestrator owns the base NFA, the taxonomy, the retained pivot, and
// the transaction counter across calls; every other object a validation
// touches (the transaction-scoped NFA clone, enumerated paths, the LP) is
// ephemeral and discarded at the end of the call. Any failure — taxonomy
// conflict, invalid pattern, path explosion, infeasibility, or solver error
// — is fail-closed: Validate returns false and leaves the taxonomy,
// transaction counter, and retained pivot exactly as they were before the
// call, mirroring core.Graph's discipline of never leaving a caller-visible
// partial mutation behind a failed operation.
package orchestrator
