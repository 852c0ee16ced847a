package orchestrator

import (
	"context"

	"github.com/norkamer/caps/dag"
	"golang.org/x/sync/errgroup"
)

// ValidateBatch runs len(txs) independent validations concurrently, one
// goroutine per (Orchestrator, Transaction) pair, and returns their
// decisions in the same order as txs. This is an ambient convenience
// beyond spec.md's core operation set, permitted by spec.md §5's allowance
// for parallelizing independent validations "provided each thread has its
// own orchestrator instance" — orchestrators[i] validates txs[i], so no
// two goroutines ever touch the same Orchestrator's retained pivot or
// taxonomy.
//
// len(orchestrators) must equal len(txs); a length mismatch is a
// programming error and panics.
func ValidateBatch(ctx context.Context, txs []Transaction, orchestrators []*Orchestrator, dagReader dag.Reader) []bool {
	if len(orchestrators) != len(txs) {
		panic("orchestrator: ValidateBatch requires one orchestrator per transaction")
	}

	results := make([]bool, len(txs))
	g, gctx := errgroup.WithContext(ctx)
	for i := range txs {
		i := i
		g.Go(func() error {
			results[i] = orchestrators[i].Validate(gctx, txs[i], dagReader)
			return nil
		})
	}
	_ = g.Wait() // Validate never returns an error; this can never fail
	return results
}
