package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name       string
		deposit    string
		withdrawal string
		want       string
	}{
		{"deposit", "100.00", "0", "100"},
		{"withdrawal", "0", "4.50", "-4.5"},
		{"both zero", "0", "0", "0"},
		{"both set prefers deposit", "10.00", "3.00", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{Deposit: dec(tt.deposit), Withdrawal: dec(tt.withdrawal)}
			assert.Equal(t, tt.want, tx.SignedAmount().String())

			rec := ParsedRecord{Deposit: dec(tt.deposit), Withdrawal: dec(tt.withdrawal)}
			assert.Equal(t, tt.want, rec.SignedAmount().String())
		})
	}
}

func TestParsedRecordTransaction(t *testing.T) {
	rec := ParsedRecord{
		AccountID:   "acct-1",
		Date:        Day(time.Date(2024, 3, 10, 15, 4, 5, 0, time.Local)),
		Code:        "1042",
		Description: "Coffee",
		Withdrawal:  dec("4.50"),
		Reconciled:  true,
	}

	tx := rec.Transaction()
	assert.Empty(t, tx.ID, "store assigns the ID, not the conversion")
	assert.Equal(t, rec.AccountID, tx.AccountID)
	assert.Equal(t, rec.Date, tx.Date)
	assert.Equal(t, rec.Code, tx.Code)
	assert.Equal(t, rec.Description, tx.Description)
	assert.True(t, tx.Withdrawal.Equal(rec.Withdrawal))
	assert.True(t, tx.Reconciled)
}

func TestDay(t *testing.T) {
	d := Day(time.Date(2024, 3, 10, 23, 59, 59, 999, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, time.UTC, d.Location())
}
