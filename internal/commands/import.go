package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/oplog"
	"github.com/checkbook-dev/checkbook/internal/reconcile"
)

func newImportCommand(dataDir func() string) *cobra.Command {
	var account string
	var reconcileNew, syncMode, yes bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import a bank CSV and reconcile it against the ledger",
		Long: `Import parses a bank CSV export, matches each row against the account's
existing transactions by amount and date, and shows a plan (update vs. add)
for confirmation before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			name, err := e.accountName(account)
			if err != nil {
				return err
			}
			a, err := e.ledger.FindAccount(name)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			existing, err := e.ledger.AccountTransactions(a.ID)
			if err != nil {
				return err
			}

			// Plan construction is pure; nothing is written until the
			// user confirms.
			plan, err := reconcile.BuildPlan(string(raw), a.ID, existing)
			if err != nil {
				return err
			}

			if !reconcileNew {
				reconcileNew = e.cfg.Import.ReconcileNew
			}
			if !syncMode {
				syncMode = e.cfg.Import.SyncMode
			}

			confirm := stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
			if !confirm(plan.Summary()) {
				fmt.Fprintln(cmd.OutOrStdout(), "Import cancelled.")
				return nil
			}

			res, err := reconcile.Execute(e.store.Transactions(), plan, reconcile.ExecOptions{
				ReconcileNew: reconcileNew,
				SyncMode:     syncMode,
			})
			if err != nil {
				return err
			}

			if logErr := oplog.Append(e.dataDir, []oplog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "csv-import",
				Details:   fmt.Sprintf("%s: %d updated, %d added", filepath.Base(args[0]), res.Updated, res.Added),
				AccountID: a.ID,
				Count:     res.Updated + res.Added,
			}}); logErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: writing ops log: %v\n", logErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reconciliation complete. %d updated, %d added.\n",
				res.Updated, res.Added)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or ID to import into")
	cmd.Flags().BoolVar(&reconcileNew, "reconcile-new", false, "mark unmatched imported rows as reconciled")
	cmd.Flags().BoolVar(&syncMode, "sync", false, "append-only: insert every row, never touch existing reconciliation state")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
