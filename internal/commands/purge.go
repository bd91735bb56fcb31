package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/model"
	"github.com/checkbook-dev/checkbook/internal/oplog"
)

func newPurgeCommand(dataDir func() string) *cobra.Command {
	var account, beforeStr string
	var yes bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete reconciled transactions up to a cutoff date",
		Args:  cobra.NoArgs,
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

			if beforeStr == "" {
				return fmt.Errorf("--before is required")
			}
			cutoff, err := time.Parse("2006-01-02", beforeStr)
			if err != nil {
				return fmt.Errorf("parsing --before %q: %w", beforeStr, err)
			}
			cutoff = model.Day(cutoff)

			confirm := stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
			prompt := fmt.Sprintf("Delete all reconciled transactions in %s dated on or before %s?",
				a.Name, cutoff.Format("2006-01-02"))
			if !confirm(prompt) {
				fmt.Fprintln(cmd.OutOrStdout(), "Purge cancelled.")
				return nil
			}

			n, err := e.ledger.Purge(a.ID, cutoff)
			if err != nil {
				return err
			}

			if logErr := oplog.Append(e.dataDir, []oplog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "purge",
				Details:   "cutoff " + cutoff.Format("2006-01-02"),
				AccountID: a.ID,
				Count:     n,
			}}); logErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: writing ops log: %v\n", logErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d transaction(s)\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or ID")
	cmd.Flags().StringVar(&beforeStr, "before", "", "cutoff date (YYYY-MM-DD, inclusive)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
