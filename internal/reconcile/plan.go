// Package reconcile matches parsed bank records against existing ledger
// transactions and turns the result into a Plan the user confirms
// before anything is written.
package reconcile

import (
	"fmt"

	"github.com/checkbook-dev/checkbook/internal/importer"
	"github.com/checkbook-dev/checkbook/internal/model"
)

// Plan is the computed, not-yet-committed result of matching imported rows
// against the existing ledger. ToUpdate holds copies of matched existing
// transactions with Reconciled set; ToAdd holds the unmatched parsed rows.
type Plan struct {
	ToUpdate []model.Transaction
	ToAdd    []model.ParsedRecord
}

// Summary renders the human-readable counts shown in the confirmation
// prompt.
func (p *Plan) Summary() string {
	return fmt.Sprintf("Reconcile %d and add %d new transactions?",
		len(p.ToUpdate), len(p.ToAdd))
}

// BuildPlan parses raw CSV text for an account and matches it against the
// account's existing transactions. It is a pure function of its inputs:
// nothing is persisted and the existing slice is not modified, so a plan
// can be shown to the user and discarded without side effects.
func BuildPlan(raw, accountID string, existing []model.Transaction) (*Plan, error) {
	parsed, err := importer.Parse(raw, accountID)
	if err != nil {
		return nil, err
	}
	if len(parsed) == 0 {
		return nil, importer.ErrEmptyFile
	}
	return Match(parsed, existing), nil
}
