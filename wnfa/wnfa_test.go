package wnfa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freezeWith(t *testing.T, patterns map[string]string) *NFA {
	t.Helper()
	b := New()
	for measure, pattern := range patterns {
		require.NoError(t, b.AddWeightedRegex(measure, pattern, decimal.NewFromInt(1)))
	}
	nfa, err := b.Freeze()
	require.NoError(t, err)
	return nfa
}

func TestEvaluate_AnchoredNoPrefixMatch(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "ab$"})

	_, ok := nfa.Evaluate("abc")
	assert.False(t, ok, "trailing characters after the anchored pattern must not match")

	_, ok = nfa.Evaluate("ab")
	assert.True(t, ok)
}

func TestEvaluate_ImplicitSuffixAllowsTrailingChars(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "ab"})

	_, ok := nfa.Evaluate("ab")
	assert.True(t, ok)

	_, ok = nfa.Evaluate("abxyz")
	assert.True(t, ok, "unanchored pattern implicitly allows arbitrary suffix")

	_, ok = nfa.Evaluate("xab")
	assert.False(t, ok, "unanchored pattern still requires the prefix to match from position 0")
}

func TestEvaluate_NoMatchOnUnrelatedWord(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "ab$"})
	_, ok := nfa.Evaluate("zz")
	assert.False(t, ok)
}

func TestFreeze_ErrorsOnDoubleFreeze(t *testing.T) {
	b := New()
	require.NoError(t, b.AddWeightedRegex("m1", "a$", decimal.NewFromInt(1)))
	_, err := b.Freeze()
	require.NoError(t, err)

	_, err = b.Freeze()
	assert.ErrorIs(t, err, ErrAlreadyFrozen)
}

func TestAddWeightedRegex_ErrorsAfterFreeze(t *testing.T) {
	b := New()
	require.NoError(t, b.AddWeightedRegex("m1", "a$", decimal.NewFromInt(1)))
	_, err := b.Freeze()
	require.NoError(t, err)

	err = b.AddWeightedRegex("m2", "b$", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrFrozenNFA)
}

func TestAddWeightedRegex_InvalidPattern(t *testing.T) {
	b := New()
	err := b.AddWeightedRegex("m1", "a(", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestAddWeightedRegex_DuplicateMeasureOnSameFinalState(t *testing.T) {
	b := New()
	require.NoError(t, b.AddWeightedRegex("m1", "a$", decimal.NewFromInt(1)))
	err := b.AddWeightedRegex("m1", "a$", decimal.NewFromInt(2))
	assert.ErrorIs(t, err, ErrDuplicateMeasure)
}

func TestAddWeightedRegex_SameStateDifferentMeasuresAllowed(t *testing.T) {
	b := New()
	require.NoError(t, b.AddWeightedRegex("m1", "a$", decimal.NewFromInt(1)))
	require.NoError(t, b.AddWeightedRegex("m2", "a$", decimal.NewFromInt(2)))

	nfa, err := b.Freeze()
	require.NoError(t, err)

	id, ok := nfa.Evaluate("a")
	require.True(t, ok)
	weights := nfa.WeightsAt(id)
	assert.Len(t, weights, 2)
}

func TestFreeze_RejectsDuplicateMeasureOnMergedCompositeState(t *testing.T) {
	b := New()
	// Two structurally distinct patterns that both accept exactly "ab":
	// subset construction will land both of their (distinct) raw final
	// states in the same composite frozen state after consuming "ab".
	require.NoError(t, b.AddWeightedRegex("m1", "ab$", decimal.NewFromInt(1)))
	require.NoError(t, b.AddWeightedRegex("m1", "a(b)$", decimal.NewFromInt(2)))

	_, err := b.Freeze()
	assert.ErrorIs(t, err, ErrDuplicateMeasure, "One Weight, One Use must hold for merged composite states too")
}

func TestEvaluate_TieBreakIsDeterministicAcrossRepeatedCalls(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "(cat|at)$"})

	first, ok := nfa.Evaluate("cat")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := nfa.Evaluate("cat")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestCloneWith_IndependentFromParent(t *testing.T) {
	base := freezeWith(t, map[string]string{"m1": "a$"})

	clone := base.CloneWith()
	require.NoError(t, clone.AddWeightedRegex("m2", "b$", decimal.NewFromInt(5)))
	cloned, err := clone.Freeze()
	require.NoError(t, err)

	_, ok := base.Evaluate("b")
	assert.False(t, ok, "parent NFA must not gain the clone's new pattern")

	_, ok = cloned.Evaluate("b")
	assert.True(t, ok)
	_, ok = cloned.Evaluate("a")
	assert.True(t, ok, "clone must retain all patterns from its parent")
}

func TestEvaluate_CharClassAndRepeat(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "[0-9]{3}$"})

	_, ok := nfa.Evaluate("123")
	assert.True(t, ok)

	_, ok = nfa.Evaluate("12")
	assert.False(t, ok)

	_, ok = nfa.Evaluate("1234")
	assert.False(t, ok)
}

func TestEvaluate_Alternation(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "(cat|dog)$"})

	_, ok := nfa.Evaluate("cat")
	assert.True(t, ok)
	_, ok = nfa.Evaluate("dog")
	assert.True(t, ok)
	_, ok = nfa.Evaluate("bird")
	assert.False(t, ok)
}

func TestFinalStates_SortedAscending(t *testing.T) {
	nfa := freezeWith(t, map[string]string{"m1": "a$", "m2": "bb$"})
	finals := nfa.FinalStates()
	for i := 1; i < len(finals); i++ {
		assert.Less(t, finals[i-1], finals[i])
	}
}
