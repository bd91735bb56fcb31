package reconcile

import (
	"fmt"

	"github.com/checkbook-dev/checkbook/internal/store"
)

// ExecOptions controls how a confirmed plan is applied.
type ExecOptions struct {
	// ReconcileNew marks every added record reconciled before insertion,
	// treating freshly imported unmatched rows as already cleared.
	ReconcileNew bool
	// SyncMode skips ToUpdate entirely and inserts every ToAdd record.
	// Used for append-only ingestion where prior reconciliation state
	// must never be touched.
	SyncMode bool
}

// Result reports what Execute persisted.
type Result struct {
	Updated int
	Added   int
}

// Execute applies a confirmed plan against the transaction store: updates
// first, then additions, each as its own store call. There is no batch
// atomicity; a store failure is returned immediately and already-applied
// writes stay applied.
func Execute(txs store.TransactionStore, plan *Plan, opts ExecOptions) (Result, error) {
	var res Result

	if !opts.SyncMode {
		for _, tx := range plan.ToUpdate {
			if err := txs.Put(tx); err != nil {
				return res, fmt.Errorf("updating transaction %s: %w", tx.ID, err)
			}
			res.Updated++
		}
	}

	for _, rec := range plan.ToAdd {
		if !opts.SyncMode && opts.ReconcileNew {
			rec.Reconciled = true
		}
		if _, err := txs.Add(rec.Transaction()); err != nil {
			return res, fmt.Errorf("adding transaction %q: %w", rec.Description, err)
		}
		res.Added++
	}

	return res, nil
}
