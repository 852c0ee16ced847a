// Package taxonomy provides a versioned, append-only mapping from account
// identifiers to alphabet symbols.
//
// A Taxonomy never forgets a mapping it has recorded: Update(delta, v) adds
// new (account, symbol) pairs at version v, and Lookup(account, v) returns
// the symbol recorded at the greatest version ≤ v that mentions the account.
// Two observers calling Lookup with the same arguments always see the same
// symbol — there is no mutable global state beyond the append-only history.
//
// Symbols are drawn from a fixed Alphabet (an ordered set of runes) supplied
// at construction time. When a caller omits an explicit symbol for an
// account, Taxonomy assigns the lowest-ordinal symbol in the Alphabet that
// is not already active at the target version.
//
// Historization exists so that validation decisions remain stable under
// re-ordering of independent transactions, and so that a retained simplex
// pivot stays meaningful across calls: as long as an account's symbol is
// never renamed, an older feasible assignment keeps describing the same
// equivalence classes.
package taxonomy
