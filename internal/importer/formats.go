package importer

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/checkbook-dev/checkbook/internal/model"
)

// formatKind selects the row-mapping rule for a profile.
type formatKind int

const (
	kindCreditDebit formatKind = iota
	kindSignedAmount
	kindPostedCheck
	kindSelfExport
)

// Profile describes one known bank CSV layout. A file matches the profile
// when its header line contains Signature as a substring.
type Profile struct {
	Name      string
	Signature string
	kind      formatKind
}

// DefaultProfiles returns the built-in profiles in matching order. The first
// profile whose signature the header contains wins, so signatures must stay
// distinct enough that no plausible header contains two of them.
func DefaultProfiles() []Profile {
	return []Profile{
		{
			Name:      "credit-debit",
			Signature: "Account,Date,Pending?,Description,Category,Check,Credit,Debit",
			kind:      kindCreditDebit,
		},
		{
			Name:      "signed-amount",
			Signature: "Date,Description,Original Description,Category,Amount,Status",
			kind:      kindSignedAmount,
		},
		{
			Name:      "posted-check",
			Signature: "Posted Date,Check Number,Description,Debit,Credit",
			kind:      kindPostedCheck,
		},
		{
			Name:      "checkbook-export",
			Signature: "Date,Code,Description,Deposit,Withdrawal,Reconciled",
			kind:      kindSelfExport,
		},
	}
}

// matchProfile returns the first profile whose signature the header contains.
func matchProfile(header string, profiles []Profile) (Profile, bool) {
	for _, p := range profiles {
		if strings.Contains(header, p.Signature) {
			return p, true
		}
	}
	return Profile{}, false
}

// rowMapper maps tokenized fields to a parsed record for one format kind.
type rowMapper func(fields []string, accountID string) model.ParsedRecord

// rowMappers resolves each format kind to its mapping function.
var rowMappers = map[formatKind]rowMapper{
	kindCreditDebit:  mapCreditDebitRow,
	kindSignedAmount: mapSignedAmountRow,
	kindPostedCheck:  mapPostedCheckRow,
	kindSelfExport:   mapSelfExportRow,
}

// mapRow applies the profile's mapping rule to one tokenized data row.
func (p Profile) mapRow(fields []string, accountID string) model.ParsedRecord {
	return rowMappers[p.kind](fields, accountID)
}

func mapCreditDebitRow(fields []string, accountID string) model.ParsedRecord {
	return model.ParsedRecord{
		AccountID:   accountID,
		Date:        parseDate(field(fields, 1)),
		Description: field(fields, 3),
		Deposit:     parseAmount(field(fields, 6)),
		Withdrawal:  parseAmount(field(fields, 7)).Abs(),
	}
}

func mapSignedAmountRow(fields []string, accountID string) model.ParsedRecord {
	rec := model.ParsedRecord{
		AccountID:   accountID,
		Date:        parseDate(field(fields, 0)),
		Description: field(fields, 1),
	}
	amount := parseAmount(field(fields, 4))
	if amount.IsPositive() {
		rec.Deposit = amount
	} else {
		rec.Withdrawal = amount.Abs()
	}
	return rec
}

func mapPostedCheckRow(fields []string, accountID string) model.ParsedRecord {
	return model.ParsedRecord{
		AccountID:   accountID,
		Date:        parseDate(field(fields, 0)),
		Code:        field(fields, 1),
		Description: field(fields, 2),
		Withdrawal:  parseAmount(field(fields, 3)).Abs(),
		Deposit:     parseAmount(field(fields, 4)),
	}
}

func mapSelfExportRow(fields []string, accountID string) model.ParsedRecord {
	return model.ParsedRecord{
		AccountID:   accountID,
		Date:        parseDate(field(fields, 0)),
		Code:        field(fields, 1),
		Description: field(fields, 2),
		Deposit:     parseAmount(field(fields, 3)),
		Withdrawal:  parseAmount(field(fields, 4)),
		Reconciled:  field(fields, 5) == "true",
	}
}

// field reads column i, tolerating rows shorter than the profile expects.
func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}

// dateLayouts are tried in order; every profile normalizes dates the same
// way. A date that matches none of them becomes the zero time, so malformed
// dates never fail the import.
var dateLayouts = []string{"2006-01-02", "01/02/2006", "1/2/2006"}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Day(t)
		}
	}
	return time.Time{}
}

// parseAmount parses a currency field. Missing or non-numeric values
// default to zero, never to an error.
func parseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
