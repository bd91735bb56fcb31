package store

import (
	"errors"

	"github.com/checkbook-dev/checkbook/internal/model"
)

// ErrNotFound is returned by Get when no record has the given ID.
var ErrNotFound = errors.New("record not found")

// AccountStore is the key-addressed record store for the accounts collection.
type AccountStore interface {
	Get(id string) (model.Account, error)
	GetAll() ([]model.Account, error)
	// Add inserts a record and returns its ID. A record that already
	// carries an ID keeps it (backup restore depends on this); otherwise
	// the store assigns one.
	Add(a model.Account) (string, error)
	Put(a model.Account) error
	Delete(id string) error
	Clear() error
	Count() (int, error)
}

// TransactionStore is the key-addressed record store for the transactions
// collection. The caller never assumes atomicity across calls.
type TransactionStore interface {
	Get(id string) (model.Transaction, error)
	GetAll() ([]model.Transaction, error)
	Add(t model.Transaction) (string, error)
	Put(t model.Transaction) error
	Delete(id string) error
	Clear() error
	Count() (int, error)
}

// Store bundles the two record collections.
type Store interface {
	Accounts() AccountStore
	Transactions() TransactionStore
	Close() error
}
