// Package backup exports and restores the whole database as JSON.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/checkbook-dev/checkbook/internal/model"
	"github.com/checkbook-dev/checkbook/internal/store"
)

// Snapshot is the on-disk backup shape: every account and every
// transaction.
type Snapshot struct {
	Accounts     []model.Account     `json:"accounts"`
	Transactions []model.Transaction `json:"transactions"`
}

// ErrInvalidFormat reports a backup file missing either collection.
var ErrInvalidFormat = errors.New("invalid backup file format")

// Export writes a snapshot of both collections as indented JSON.
func Export(w io.Writer, st store.Store) error {
	accounts, err := st.Accounts().GetAll()
	if err != nil {
		return fmt.Errorf("reading accounts: %w", err)
	}
	txs, err := st.Transactions().GetAll()
	if err != nil {
		return fmt.Errorf("reading transactions: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot{Accounts: accounts, Transactions: txs}); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Result reports what Restore loaded.
type Result struct {
	Accounts     int
	Transactions int
}

// Restore replaces all data with the snapshot read from r: both collections
// are cleared, then every record is re-added with its original ID so
// transaction→account references stay intact. The caller is responsible
// for confirming with the user first; there is no rollback if a write
// fails partway.
func Restore(st store.Store, r io.Reader) (Result, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return Result{}, fmt.Errorf("decoding backup: %w", err)
	}
	if snap.Accounts == nil || snap.Transactions == nil {
		return Result{}, ErrInvalidFormat
	}

	if err := st.Transactions().Clear(); err != nil {
		return Result{}, fmt.Errorf("clearing transactions: %w", err)
	}
	if err := st.Accounts().Clear(); err != nil {
		return Result{}, fmt.Errorf("clearing accounts: %w", err)
	}

	var res Result
	for _, a := range snap.Accounts {
		if _, err := st.Accounts().Add(a); err != nil {
			return res, fmt.Errorf("restoring account %q: %w", a.Name, err)
		}
		res.Accounts++
	}
	for _, tx := range snap.Transactions {
		if _, err := st.Transactions().Add(tx); err != nil {
			return res, fmt.Errorf("restoring transaction %s: %w", tx.ID, err)
		}
		res.Transactions++
	}
	return res, nil
}
