package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/backup"
	"github.com/checkbook-dev/checkbook/internal/oplog"
)

func newBackupCommand(dataDir func() string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export all accounts and transactions as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := backup.Export(out, e.store); err != nil {
				return err
			}
			if output != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func newRestoreCommand(dataDir func() string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore <backup.json>",
		Short: "Replace ALL data with a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			confirm := stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
			if !confirm("This will replace ALL current data. This cannot be undone. Continue?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Restore cancelled.")
				return nil
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			res, err := backup.Restore(e.store, f)
			if err != nil {
				return err
			}

			if logErr := oplog.Append(e.dataDir, []oplog.Entry{{
				Timestamp: time.Now().UTC(),
				Action:    "restore",
				Details:   filepath.Base(args[0]),
				Count:     res.Accounts + res.Transactions,
			}}); logErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: writing ops log: %v\n", logErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Restored %d account(s) and %d transaction(s)\n",
				res.Accounts, res.Transactions)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
