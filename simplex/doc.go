// Package simplex implements the triple-validation Phase-1 feasibility
// solver: given a lpmodel.LinearProgram and an optional retained pivot, it
// decides FEASIBLE/INFEASIBLE/ERROR by driving a standard Phase-1 auxiliary
// problem (one artificial variable per equality/GE constraint, slack per
// LE, surplus per GE) to a minimum total artificial value, using Bland's
// rule for anti-cycling.
//
// Dispatch first classifies any supplied pivot via the pivot package; a
// stable pivot is tried as a warm-start before falling back to (or
// cross-validating against) a cold tableau built from scratch. The pivot
// loop itself is a decimal.Decimal restatement of the teacher's
// matrix.impl_linear_algebra.go Gaussian-elimination pivot loop (select
// pivot row, normalize, eliminate column); the options struct follows the
// teacher's flow package's iteration-cap convention.
package simplex
