// Package importer parses heterogeneous bank CSV exports into ledger-shaped
// records. A file's first non-empty line selects a format profile; every
// following line becomes one ParsedRecord. Parsing is best-effort: short
// rows, bad dates, and bad amounts degrade to zero values instead of
// failing the batch.
package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/checkbook-dev/checkbook/internal/model"
)

// ErrEmptyFile reports a file with no parseable transactions: fewer than
// two non-empty lines, or a header with no data rows.
var ErrEmptyFile = errors.New("no valid transactions found")

// UnrecognizedFormatError reports a header that matches no known profile.
type UnrecognizedFormatError struct {
	Header string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("CSV header matches no known bank format: %q", e.Header)
}

// Parse maps raw CSV text to parsed records for the given account.
// It returns ErrEmptyFile or *UnrecognizedFormatError and has no side
// effects.
func Parse(raw, accountID string) ([]model.ParsedRecord, error) {
	return parseWith(raw, accountID, DefaultProfiles())
}

func parseWith(raw, accountID string, profiles []Profile) ([]model.ParsedRecord, error) {
	lines := SplitLines(raw)
	if len(lines) < 2 {
		return nil, ErrEmptyFile
	}

	// Quotes are stripped before signature matching so a fully-quoted
	// header (our own export style) still matches its profile.
	header := lines[0]
	profile, ok := matchProfile(strings.ReplaceAll(header, `"`, ""), profiles)
	if !ok {
		return nil, &UnrecognizedFormatError{Header: header}
	}

	records := make([]model.ParsedRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		records = append(records, profile.mapRow(TokenizeLine(line), accountID))
	}
	return records, nil
}
