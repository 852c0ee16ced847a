// Package lpmodel defines the linear-program data structures the
// classification stage of a transaction validation builds: flux variables
// (one per non-empty NFA equivalence class), linear constraints over them,
// and the constraint builders that turn a measure's coefficient map into a
// source-primary, target-primary, or secondary (regulatory) constraint.
//
// All arithmetic is github.com/shopspring/decimal rather than float64,
// since the feasibility solver downstream requires at least 28 significant
// decimal digits of precision — a bound plain IEEE-754 doubles cannot meet.
package lpmodel
