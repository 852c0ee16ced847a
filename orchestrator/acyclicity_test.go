package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/norkamer/caps/dag"
	"github.com/norkamer/caps/orchestrator"
	"github.com/norkamer/caps/taxonomy"
	"github.com/norkamer/caps/wnfa"
)

// TestValidate_RejectsCyclicDAG exercises the acyclicity precondition: a
// dagReader that reports a cycle through Validate() must be rejected
// before path enumeration ever runs, regardless of the transaction.
func TestValidate_RejectsCyclicDAG(t *testing.T) {
	base, err := wnfa.New().Freeze()
	require.NoError(t, err)

	o, err := orchestrator.New(base, taxonomy.PrintableASCIIAlphabet())
	require.NoError(t, err)

	d := dag.New()
	_, err = d.Connect("alice", "bob", 0)
	require.NoError(t, err)
	_, err = d.Connect("bob", "alice", 0)
	require.NoError(t, err)

	ok := o.Validate(context.Background(), orchestrator.Transaction{
		SourceAccountID: "alice",
		TargetAccountID: "bob",
	}, d)

	assert.False(t, ok, "a cyclic DAG must be rejected before enumeration")
	assert.Equal(t, 1, o.Statistics().TransactionsRejected)
}
