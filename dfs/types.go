// Package dfs provides the three-color cycle detector the account
// topology's acyclicity invariant is checked with.
package dfs

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)
