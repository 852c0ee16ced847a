// Package dfs implements cycle detection on a directed core.Graph: the
// DAG construction that backs the account topology uses it in
// dag.DAG.Validate to report a topology that is not acyclic.
//
// DetectCycles enumerates all simple cycles using vertex coloring
// (White, Gray, Black) with back-edge recording, canonicalizing each
// cycle to its lexicographically minimal rotation (Booth's algorithm, in
// utils.go) so it is reported exactly once regardless of which vertex the
// traversal reached it from first.
//
// Complexity: Time O(V+E+C·L), Memory O(V+L_max), where C is the number
// of cycles and L their average length (canonicalization is O(L)).
package dfs
