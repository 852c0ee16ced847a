// Package txnfixture builds deterministic dag.DAG and orchestrator.Transaction
// values for the six end-to-end validation scenarios of spec.md §8, in the
// manner of the teacher's builder package: one impl_*.go constructor per
// named fixture, each returning a self-contained Scenario an integration
// test can drive directly against a freshly constructed Orchestrator.
//
// Scenarios that need account ids with no inherent meaning (the fan-in
// accounts of the path-explosion fixture) use deterministic v5 UUIDs
// (github.com/google/uuid, NewSHA1 over a fixed namespace and name) rather
// than random ids, so a fixture built twice produces byte-identical DAGs.
package txnfixture
