package ledger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/checkbook-dev/checkbook/internal/model"
)

// ExportHeader is the header row of the checkbook's own CSV export. The
// importer's checkbook-export profile recognizes it, so an exported file
// re-imports cleanly.
var ExportHeader = []string{"Date", "Code", "Description", "Deposit", "Withdrawal", "Reconciled"}

const exportDateFormat = "2006-01-02"

// ExportCSV writes transactions in the self round-trip format. Every field
// is quoted, with embedded quotes doubled.
func ExportCSV(w io.Writer, txs []model.Transaction) error {
	if err := writeQuotedRow(w, ExportHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		row := []string{
			tx.Date.Format(exportDateFormat),
			tx.Code,
			tx.Description,
			tx.Deposit.StringFixed(2),
			tx.Withdrawal.StringFixed(2),
			strconv.FormatBool(tx.Reconciled),
		}
		if err := writeQuotedRow(w, row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return nil
}

func writeQuotedRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := io.WriteString(w, strings.Join(quoted, ",")+"\n")
	return err
}
