package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkbook-dev/checkbook/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "checkbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestAccountCRUD(t *testing.T) {
	s := openTestStore(t)
	accts := s.Accounts()

	id, err := accts.Add(model.Account{Name: "Checking"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := accts.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Checking", got.Name)

	got.Name = "Joint Checking"
	require.NoError(t, accts.Put(got))

	got, err = accts.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Joint Checking", got.Name)

	n, err := accts.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, accts.Delete(id))
	_, err = accts.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountAddPreservesID(t *testing.T) {
	s := openTestStore(t)
	accts := s.Accounts()

	id, err := accts.Add(model.Account{ID: "restored-id", Name: "Savings"})
	require.NoError(t, err)
	assert.Equal(t, "restored-id", id)
}

func TestTransactionCRUD(t *testing.T) {
	s := openTestStore(t)
	txs := s.Transactions()

	id, err := txs.Add(model.Transaction{
		AccountID:   "acct-1",
		Date:        date(2024, 1, 5),
		Code:        "1042",
		Description: "Rent",
		Withdrawal:  dec("1200.00"),
	})
	require.NoError(t, err)

	got, err := txs.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "acct-1", got.AccountID)
	assert.Equal(t, date(2024, 1, 5), got.Date)
	assert.Equal(t, "1042", got.Code)
	assert.True(t, got.Withdrawal.Equal(dec("1200.00")))
	assert.True(t, got.Deposit.IsZero())
	assert.False(t, got.Reconciled)

	got.Reconciled = true
	require.NoError(t, txs.Put(got))

	got, err = txs.Get(id)
	require.NoError(t, err)
	assert.True(t, got.Reconciled)

	require.NoError(t, txs.Delete(id))
	_, err = txs.Get(id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionGetAllOrdersByDate(t *testing.T) {
	s := openTestStore(t)
	txs := s.Transactions()

	for _, d := range []time.Time{date(2024, 3, 10), date(2024, 1, 2), date(2024, 2, 20)} {
		_, err := txs.Add(model.Transaction{AccountID: "a", Date: d, Deposit: dec("1")})
		require.NoError(t, err)
	}

	all, err := txs.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, date(2024, 1, 2), all[0].Date)
	assert.Equal(t, date(2024, 2, 20), all[1].Date)
	assert.Equal(t, date(2024, 3, 10), all[2].Date)
}

func TestTransactionGetAllSameDateKeepsInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	txs := s.Transactions()

	// IDs chosen so lexical order disagrees with insertion order.
	for _, id := range []string{"zz", "aa", "mm"} {
		_, err := txs.Add(model.Transaction{ID: id, AccountID: "a", Date: date(2024, 1, 5), Deposit: dec("1")})
		require.NoError(t, err)
	}

	all, err := txs.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "zz", all[0].ID)
	assert.Equal(t, "aa", all[1].ID)
	assert.Equal(t, "mm", all[2].ID)
}

func TestClearAndCount(t *testing.T) {
	s := openTestStore(t)
	txs := s.Transactions()

	for i := 0; i < 3; i++ {
		_, err := txs.Add(model.Transaction{AccountID: "a", Date: date(2024, 1, i+1)})
		require.NoError(t, err)
	}

	n, err := txs.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, txs.Clear())
	n, err = txs.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPutUnknownID(t *testing.T) {
	s := openTestStore(t)

	err := s.Accounts().Put(model.Account{ID: "nope", Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = s.Transactions().Put(model.Transaction{ID: "nope", Date: date(2024, 1, 1)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkbook.db")

	s, err := Open(path)
	require.NoError(t, err)
	id, err := s.Accounts().Add(model.Account{Name: "Checking"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Accounts().Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Checking", got.Name)
}
