// Package ledger provides the business operations over the record store:
// account lifecycle with cascading transaction deletes, per-account
// registers with running balances, reconciliation flags, and purging.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/checkbook-dev/checkbook/internal/model"
	"github.com/checkbook-dev/checkbook/internal/store"
)

// Service wraps a Store with ledger-level operations.
type Service struct {
	store store.Store
}

// NewService creates a ledger Service over a store.
func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// CreateAccount adds a named account and returns it with its assigned ID.
func (s *Service) CreateAccount(name string) (model.Account, error) {
	a := model.Account{Name: name}
	id, err := s.store.Accounts().Add(a)
	if err != nil {
		return model.Account{}, fmt.Errorf("creating account: %w", err)
	}
	a.ID = id
	return a, nil
}

// Accounts lists all accounts.
func (s *Service) Accounts() ([]model.Account, error) {
	return s.store.Accounts().GetAll()
}

// FindAccount resolves an account by ID or, failing that, by exact name.
func (s *Service) FindAccount(idOrName string) (model.Account, error) {
	a, err := s.store.Accounts().Get(idOrName)
	if err == nil {
		return a, nil
	}
	accounts, err := s.store.Accounts().GetAll()
	if err != nil {
		return model.Account{}, err
	}
	for _, a := range accounts {
		if a.Name == idOrName {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %q: %w", idOrName, store.ErrNotFound)
}

// DeleteAccount removes an account and every transaction that references
// it. The cascade is orchestrated here, one delete per record; the store
// gives no atomicity across the calls.
func (s *Service) DeleteAccount(id string) (int, error) {
	txs, err := s.AccountTransactions(id)
	if err != nil {
		return 0, err
	}
	deleted := 0
	for _, tx := range txs {
		if err := s.store.Transactions().Delete(tx.ID); err != nil {
			return deleted, fmt.Errorf("cascading delete: %w", err)
		}
		deleted++
	}
	if err := s.store.Accounts().Delete(id); err != nil {
		return deleted, fmt.Errorf("deleting account %s: %w", id, err)
	}
	return deleted, nil
}

// AddTransaction inserts a transaction, normalizing its date to a calendar
// day, and returns the assigned ID.
func (s *Service) AddTransaction(tx model.Transaction) (string, error) {
	tx.Date = model.Day(tx.Date)
	return s.store.Transactions().Add(tx)
}

// AccountTransactions returns the account's transactions sorted ascending
// by date. The sort is stable so same-day entries keep insertion order.
func (s *Service) AccountTransactions(accountID string) ([]model.Transaction, error) {
	all, err := s.store.Transactions().GetAll()
	if err != nil {
		return nil, err
	}
	var txs []model.Transaction
	for _, tx := range all {
		if tx.AccountID == accountID {
			txs = append(txs, tx)
		}
	}
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs, nil
}

// Line is one register row: a transaction plus the running balance after it.
type Line struct {
	model.Transaction
	Balance decimal.Decimal
}

// Filter narrows and orders a register. Zero values leave a dimension
// unfiltered.
type Filter struct {
	From        time.Time        // inclusive lower date bound
	To          time.Time        // inclusive upper date bound
	Description string           // case-insensitive substring
	Reconciled  *bool            // nil matches both states
	Amount      *decimal.Decimal // exact match on either deposit or withdrawal
	NewestFirst bool             // display order only; balances stay chronological
}

func (f Filter) matches(tx model.Transaction) bool {
	if !f.From.IsZero() && tx.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && tx.Date.After(f.To) {
		return false
	}
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Description)) {
		return false
	}
	if f.Reconciled != nil && tx.Reconciled != *f.Reconciled {
		return false
	}
	if f.Amount != nil && !tx.Deposit.Equal(*f.Amount) && !tx.Withdrawal.Equal(*f.Amount) {
		return false
	}
	return true
}

// Register returns the account's register with running balances attached,
// restricted to transactions the filter accepts. Balances accumulate over
// the filtered set in date order; NewestFirst reverses the returned lines
// without recomputing them.
func (s *Service) Register(accountID string, f Filter) ([]Line, error) {
	txs, err := s.AccountTransactions(accountID)
	if err != nil {
		return nil, err
	}
	var lines []Line
	balance := decimal.Zero
	for _, tx := range txs {
		if !f.matches(tx) {
			continue
		}
		balance = balance.Add(tx.Deposit).Sub(tx.Withdrawal)
		lines = append(lines, Line{Transaction: tx, Balance: balance})
	}
	if f.NewestFirst {
		sort.SliceStable(lines, func(i, j int) bool {
			return lines[j].Date.Before(lines[i].Date)
		})
	}
	return lines, nil
}

// SetReconciled sets a transaction's reconciled flag. Manual toggles may go
// either way; only automatic reconciliation is restricted to false→true.
func (s *Service) SetReconciled(id string, reconciled bool) error {
	tx, err := s.store.Transactions().Get(id)
	if err != nil {
		return err
	}
	tx.Reconciled = reconciled
	return s.store.Transactions().Put(tx)
}

// Purge deletes the account's reconciled transactions dated on or before
// the cutoff and returns how many were removed.
func (s *Service) Purge(accountID string, cutoff time.Time) (int, error) {
	txs, err := s.AccountTransactions(accountID)
	if err != nil {
		return 0, err
	}
	cutoff = model.Day(cutoff)
	purged := 0
	for _, tx := range txs {
		if !tx.Reconciled || tx.Date.After(cutoff) {
			continue
		}
		if err := s.store.Transactions().Delete(tx.ID); err != nil {
			return purged, fmt.Errorf("purging transaction %s: %w", tx.ID, err)
		}
		purged++
	}
	return purged, nil
}
