package backup

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkbook-dev/checkbook/internal/model"
	"github.com/checkbook-dev/checkbook/internal/store"
)

func openTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "checkbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestExportRestoreRoundTrip(t *testing.T) {
	src := openTestStore(t)

	acctID, err := src.Accounts().Add(model.Account{Name: "Checking"})
	require.NoError(t, err)
	txID, err := src.Transactions().Add(model.Transaction{
		AccountID:   acctID,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Code:        "1042",
		Description: "Rent",
		Withdrawal:  dec("1200.00"),
		Reconciled:  true,
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, src))

	dst := openTestStore(t)
	res, err := Restore(dst, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, Result{Accounts: 1, Transactions: 1}, res)

	// IDs survive the round trip, so references stay valid.
	a, err := dst.Accounts().Get(acctID)
	require.NoError(t, err)
	assert.Equal(t, "Checking", a.Name)

	tx, err := dst.Transactions().Get(txID)
	require.NoError(t, err)
	assert.Equal(t, acctID, tx.AccountID)
	assert.True(t, tx.Withdrawal.Equal(dec("1200.00")))
	assert.True(t, tx.Reconciled)
}

func TestRestoreReplacesExistingData(t *testing.T) {
	st := openTestStore(t)
	_, err := st.Accounts().Add(model.Account{Name: "Old"})
	require.NoError(t, err)
	_, err = st.Transactions().Add(model.Transaction{
		AccountID: "x", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	snapshot := `{"accounts":[{"id":"a1","name":"New"}],"transactions":[]}`
	res, err := Restore(st, strings.NewReader(snapshot))
	require.NoError(t, err)
	assert.Equal(t, Result{Accounts: 1, Transactions: 0}, res)

	accounts, err := st.Accounts().GetAll()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "New", accounts[0].Name)

	n, err := st.Transactions().Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRestoreInvalidFormat(t *testing.T) {
	st := openTestStore(t)

	// Valid JSON but missing collections.
	_, err := Restore(st, strings.NewReader(`{"accounts":[{"id":"a","name":"x"}]}`))
	assert.ErrorIs(t, err, ErrInvalidFormat)

	// Not JSON at all.
	_, err = Restore(st, strings.NewReader("not json"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidFormat)

	// Existing data is untouched when validation fails before the clear.
	_, err = st.Accounts().Add(model.Account{Name: "Kept"})
	require.NoError(t, err)
	_, err = Restore(st, strings.NewReader(`{}`))
	require.ErrorIs(t, err, ErrInvalidFormat)
	n, err := st.Accounts().Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
