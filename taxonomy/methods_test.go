package taxonomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norkamer/caps/taxonomy"
)

func TestUpdate_AutoAssignIsDeterministic(t *testing.T) {
	alphabet := taxonomy.NewAlphabet([]rune{'A', 'B', 'C'})
	tx := taxonomy.New(alphabet)

	err := tx.Update(map[string]rune{"alice": 0, "bob": 0}, 0)
	require.NoError(t, err)

	aliceSym, err := tx.Lookup("alice", 0)
	require.NoError(t, err)
	bobSym, err := tx.Lookup("bob", 0)
	require.NoError(t, err)

	assert.NotEqual(t, aliceSym, bobSym, "auto-assignment must remain injective")
	assert.Contains(t, []rune{'A', 'B', 'C'}, aliceSym)
	// Accounts are assigned in sorted order, each to the lowest free symbol.
	assert.Equal(t, 'A', aliceSym)
	assert.Equal(t, 'B', bobSym)
}

func TestUpdate_ExplicitSymbolConflict(t *testing.T) {
	alphabet := taxonomy.NewAlphabet([]rune{'A', 'B'})
	tx := taxonomy.New(alphabet)

	require.NoError(t, tx.Update(map[string]rune{"alice": 'A'}, 0))

	err := tx.Update(map[string]rune{"bob": 'A'}, 0)
	assert.ErrorIs(t, err, taxonomy.ErrTaxonomyConflict)

	// Failed update must not have partially committed.
	_, lookupErr := tx.Lookup("bob", 0)
	assert.ErrorIs(t, lookupErr, taxonomy.ErrUnmappedAccount)
}

func TestUpdate_AlphabetExhausted(t *testing.T) {
	alphabet := taxonomy.NewAlphabet([]rune{'A', 'B'})
	tx := taxonomy.New(alphabet)

	require.NoError(t, tx.Update(map[string]rune{"a": 0, "b": 0}, 0))

	err := tx.Update(map[string]rune{"c": 0}, 1)
	assert.ErrorIs(t, err, taxonomy.ErrAlphabetExhausted)
}

func TestUpdate_EmptyDeltaIsNoOp(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 0}, 0))

	err := tx.Update(map[string]rune{}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, tx.CurrentVersion())

	sym, err := tx.Lookup("alice", 5)
	require.NoError(t, err)
	assert.NotZero(t, sym)
}

func TestUpdate_VersionRegression(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 0}, 5))

	err := tx.Update(map[string]rune{"bob": 0}, 3)
	assert.ErrorIs(t, err, taxonomy.ErrVersionRegression)
}

func TestLookup_GreatestVersionNotExceedingRequest(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 'A'}, 0))
	require.NoError(t, tx.Update(map[string]rune{"bob": 'B'}, 3))

	// alice mapped at v0, should resolve at any v >= 0.
	sym, err := tx.Lookup("alice", 10)
	require.NoError(t, err)
	assert.Equal(t, 'A', sym)

	// bob mapped at v3, unmapped before that.
	_, err = tx.Lookup("bob", 2)
	assert.ErrorIs(t, err, taxonomy.ErrUnmappedAccount)

	sym, err = tx.Lookup("bob", 3)
	require.NoError(t, err)
	assert.Equal(t, 'B', sym)
}

func TestLookup_Determinism(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 'A'}, 0))

	first, err := tx.Lookup("alice", 7)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := tx.Lookup("alice", 7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPathToString(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 'A', "bob": 'B'}, 0))

	word, err := tx.PathToString([]string{"alice", "bob"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "AB", word)

	_, err = tx.PathToString([]string{"alice", "carol"}, 0)
	assert.ErrorIs(t, err, taxonomy.ErrUnmappedAccount)
}

func TestSnapshotRestore(t *testing.T) {
	alphabet := taxonomy.PrintableASCIIAlphabet()
	tx := taxonomy.New(alphabet)
	require.NoError(t, tx.Update(map[string]rune{"alice": 'A'}, 0))

	snap := tx.Snapshot()
	require.NoError(t, tx.Update(map[string]rune{"bob": 'B'}, 1))

	_, err := tx.Lookup("bob", 1)
	require.NoError(t, err)

	tx.Restore(snap)
	_, err = tx.Lookup("bob", 1)
	assert.ErrorIs(t, err, taxonomy.ErrUnmappedAccount)
	assert.Equal(t, 0, tx.CurrentVersion())
}
