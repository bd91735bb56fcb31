package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/ledger"
)

func newExportCommand(dataDir func() string) *cobra.Command {
	var account, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an account's transactions as CSV",
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

			txs, err := e.ledger.AccountTransactions(a.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := ledger.ExportCSV(out, txs); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transaction(s) to %s\n", len(txs), output)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or ID")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}
