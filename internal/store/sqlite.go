package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/checkbook-dev/checkbook/internal/model"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS accounts (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
	id          TEXT PRIMARY KEY,
	account_id  TEXT NOT NULL,
	date        TEXT NOT NULL,
	code        TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	deposit     TEXT NOT NULL DEFAULT '0',
	withdrawal  TEXT NOT NULL DEFAULT '0',
	reconciled  INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_account_date
	ON transactions(account_id, date);
`

const dateFormat = "2006-01-02"

// SQLiteStore persists both collections in a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_meta").Scan(&n); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("checking schema version: %w", err)
	}
	if n == 0 {
		if _, err := db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("recording schema version: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Accounts returns the accounts collection.
func (s *SQLiteStore) Accounts() AccountStore {
	return accountCollection{db: s.db}
}

// Transactions returns the transactions collection.
func (s *SQLiteStore) Transactions() TransactionStore {
	return transactionCollection{db: s.db}
}

type accountCollection struct {
	db *sql.DB
}

func (c accountCollection) Get(id string) (model.Account, error) {
	var a model.Account
	err := c.db.QueryRow("SELECT id, name FROM accounts WHERE id = ?", id).
		Scan(&a.ID, &a.Name)
	if err == sql.ErrNoRows {
		return model.Account{}, ErrNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("getting account %s: %w", id, err)
	}
	return a, nil
}

func (c accountCollection) GetAll() ([]model.Account, error) {
	rows, err := c.db.Query("SELECT id, name FROM accounts ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (c accountCollection) Add(a model.Account) (string, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	_, err := c.db.Exec("INSERT INTO accounts (id, name) VALUES (?, ?)", a.ID, a.Name)
	if err != nil {
		return "", fmt.Errorf("adding account: %w", err)
	}
	return a.ID, nil
}

func (c accountCollection) Put(a model.Account) error {
	res, err := c.db.Exec("UPDATE accounts SET name = ? WHERE id = ?", a.Name, a.ID)
	if err != nil {
		return fmt.Errorf("updating account %s: %w", a.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c accountCollection) Delete(id string) error {
	if _, err := c.db.Exec("DELETE FROM accounts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting account %s: %w", id, err)
	}
	return nil
}

func (c accountCollection) Clear() error {
	if _, err := c.db.Exec("DELETE FROM accounts"); err != nil {
		return fmt.Errorf("clearing accounts: %w", err)
	}
	return nil
}

func (c accountCollection) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM accounts").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}
	return n, nil
}

type transactionCollection struct {
	db *sql.DB
}

const txColumns = "id, account_id, date, code, description, deposit, withdrawal, reconciled"

func (c transactionCollection) Get(id string) (model.Transaction, error) {
	row := c.db.QueryRow("SELECT "+txColumns+" FROM transactions WHERE id = ?", id)
	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return model.Transaction{}, ErrNotFound
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("getting transaction %s: %w", id, err)
	}
	return t, nil
}

func (c transactionCollection) GetAll() ([]model.Transaction, error) {
	// rowid breaks same-date ties by insertion order; ids are random uuids
	// and would shuffle them.
	rows, err := c.db.Query("SELECT " + txColumns + " FROM transactions ORDER BY date, rowid")
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

func (c transactionCollection) Add(t model.Transaction) (string, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	_, err := c.db.Exec(
		"INSERT INTO transactions ("+txColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.AccountID, t.Date.Format(dateFormat), t.Code, t.Description,
		t.Deposit.String(), t.Withdrawal.String(), boolToInt(t.Reconciled),
	)
	if err != nil {
		return "", fmt.Errorf("adding transaction: %w", err)
	}
	return t.ID, nil
}

func (c transactionCollection) Put(t model.Transaction) error {
	res, err := c.db.Exec(
		`UPDATE transactions
		 SET account_id = ?, date = ?, code = ?, description = ?,
		     deposit = ?, withdrawal = ?, reconciled = ?
		 WHERE id = ?`,
		t.AccountID, t.Date.Format(dateFormat), t.Code, t.Description,
		t.Deposit.String(), t.Withdrawal.String(), boolToInt(t.Reconciled), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction %s: %w", t.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (c transactionCollection) Delete(id string) error {
	if _, err := c.db.Exec("DELETE FROM transactions WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting transaction %s: %w", id, err)
	}
	return nil
}

func (c transactionCollection) Clear() error {
	if _, err := c.db.Exec("DELETE FROM transactions"); err != nil {
		return fmt.Errorf("clearing transactions: %w", err)
	}
	return nil
}

func (c transactionCollection) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM transactions").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var t model.Transaction
	var date, deposit, withdrawal string
	var reconciled int

	err := row.Scan(&t.ID, &t.AccountID, &date, &t.Code, &t.Description,
		&deposit, &withdrawal, &reconciled)
	if err != nil {
		return model.Transaction{}, err
	}

	d, err := time.Parse(dateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	t.Date = d

	if t.Deposit, err = decimal.NewFromString(deposit); err != nil {
		return model.Transaction{}, fmt.Errorf("parsing deposit %q: %w", deposit, err)
	}
	if t.Withdrawal, err = decimal.NewFromString(withdrawal); err != nil {
		return model.Transaction{}, fmt.Errorf("parsing withdrawal %q: %w", withdrawal, err)
	}
	t.Reconciled = reconciled != 0

	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
