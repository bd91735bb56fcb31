package reconcile

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/checkbook-dev/checkbook/internal/model"
)

// amountEpsilon is the absolute tolerance for amount equality: anything
// under one cent counts as the same amount.
var amountEpsilon = decimal.New(1, -2)

// maxDayDiff is the inclusive date window for a match, in calendar days.
const maxDayDiff = 1

// Match pairs each parsed record against the candidate pool of existing
// transactions, in order. The first pool entry whose signed amount differs
// by less than a cent and whose date differs by at most one day is
// consumed; ties are never re-scored, so results are reproducible.
//
// The pool is all existing transactions, not just unreconciled ones. A
// matched transaction that is already reconciled still leaves the pool but
// does not enter ToUpdate. Matched transactions are returned as copies;
// the caller's slice is left untouched.
func Match(parsed []model.ParsedRecord, existing []model.Transaction) *Plan {
	pool := make([]model.Transaction, len(existing))
	copy(pool, existing)

	plan := &Plan{}
	for _, rec := range parsed {
		i := findMatch(rec, pool)
		if i < 0 {
			plan.ToAdd = append(plan.ToAdd, rec)
			continue
		}

		matched := pool[i]
		pool = append(pool[:i], pool[i+1:]...)
		if matched.Reconciled {
			continue
		}
		matched.Reconciled = true
		plan.ToUpdate = append(plan.ToUpdate, matched)
	}
	return plan
}

// findMatch returns the index of the first pool entry within tolerance of
// rec, or -1.
func findMatch(rec model.ParsedRecord, pool []model.Transaction) int {
	amount := rec.SignedAmount()
	for i, tx := range pool {
		if amount.Sub(tx.SignedAmount()).Abs().GreaterThanOrEqual(amountEpsilon) {
			continue
		}
		if dayDiff(rec.Date, tx.Date) > maxDayDiff {
			continue
		}
		return i
	}
	return -1
}

// dayDiff returns the absolute difference between two calendar dates in
// whole days.
func dayDiff(a, b time.Time) int {
	diff := model.Day(a).Sub(model.Day(b))
	if diff < 0 {
		diff = -diff
	}
	return int(diff / (24 * time.Hour))
}
