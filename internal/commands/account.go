package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newAccountCommand(dataDir func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newAccountAddCommand(dataDir))
	cmd.AddCommand(newAccountListCommand(dataDir))
	cmd.AddCommand(newAccountRemoveCommand(dataDir))
	return cmd
}

func newAccountAddCommand(dataDir func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			a, err := e.ledger.CreateAccount(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created account %q (%s)\n", a.Name, a.ID)
			return nil
		},
	}
}

func newAccountListCommand(dataDir func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			accounts, err := e.ledger.Accounts()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tID")
			for _, a := range accounts {
				fmt.Fprintf(w, "%s\t%s\n", a.Name, a.ID)
			}
			return w.Flush()
		},
	}
}

func newAccountRemoveCommand(dataDir func() string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <name-or-id>",
		Short: "Delete an account and all its transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			a, err := e.ledger.FindAccount(args[0])
			if err != nil {
				return err
			}

			confirm := stdinConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), yes)
			if !confirm(fmt.Sprintf("Delete account %q and ALL its transactions?", a.Name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}

			deleted, err := e.ledger.DeleteAccount(a.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted account %q and %d transaction(s)\n", a.Name, deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
