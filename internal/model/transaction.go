package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single ledger row in an account's register.
//
// Exactly one of Deposit/Withdrawal is expected to be non-zero for a real
// transaction, but nothing enforces that; callers must tolerate rows where
// both are zero or both are set.
type Transaction struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Date        time.Time       `json:"date"` // calendar date, no time-of-day
	Code        string          `json:"code"` // check number or source tag, may be empty
	Description string          `json:"description"`
	Deposit     decimal.Decimal `json:"deposit"`
	Withdrawal  decimal.Decimal `json:"withdrawal"`
	Reconciled  bool            `json:"reconciled"`
}

// SignedAmount returns the comparison key used for matching: the deposit if
// positive, otherwise the negated withdrawal.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Deposit.IsPositive() {
		return t.Deposit
	}
	return t.Withdrawal.Neg()
}

// ParsedRecord is a bank-CSV row mapped to the ledger shape. It has no ID
// yet; the store assigns one when the record is inserted.
type ParsedRecord struct {
	AccountID   string
	Date        time.Time
	Code        string
	Description string
	Deposit     decimal.Decimal
	Withdrawal  decimal.Decimal
	Reconciled  bool
}

// SignedAmount returns the matching key for a parsed record.
func (r ParsedRecord) SignedAmount() decimal.Decimal {
	if r.Deposit.IsPositive() {
		return r.Deposit
	}
	return r.Withdrawal.Neg()
}

// Transaction converts a parsed record into an insertable Transaction.
func (r ParsedRecord) Transaction() Transaction {
	return Transaction{
		AccountID:   r.AccountID,
		Date:        r.Date,
		Code:        r.Code,
		Description: r.Description,
		Deposit:     r.Deposit,
		Withdrawal:  r.Withdrawal,
		Reconciled:  r.Reconciled,
	}
}

// Day truncates a timestamp to midnight UTC. All ledger dates are stored in
// this form so date arithmetic is whole-day arithmetic.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
