package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/model"
)

func newTxCommand(dataDir func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage transactions",
	}
	cmd.AddCommand(newTxAddCommand(dataDir))
	cmd.AddCommand(newTxEditCommand(dataDir))
	cmd.AddCommand(newTxReconcileCommand(dataDir))
	cmd.AddCommand(newTxRemoveCommand(dataDir))
	return cmd
}

func newTxAddCommand(dataDir func() string) *cobra.Command {
	var account, dateStr, code, description, deposit, withdrawal string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
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

			date := time.Now()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
			}

			tx := model.Transaction{
				AccountID:   a.ID,
				Date:        model.Day(date),
				Code:        code,
				Description: description,
			}
			if tx.Deposit, err = parseAmountFlag("--deposit", deposit); err != nil {
				return err
			}
			if tx.Withdrawal, err = parseAmountFlag("--withdrawal", withdrawal); err != nil {
				return err
			}

			id, err := e.ledger.AddTransaction(tx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added transaction %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or ID")
	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&code, "code", "", "check number or source tag")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&deposit, "deposit", "", "deposit amount")
	cmd.Flags().StringVar(&withdrawal, "withdrawal", "", "withdrawal amount")

	return cmd
}

func newTxEditCommand(dataDir func() string) *cobra.Command {
	var dateStr, code, description, deposit, withdrawal string

	cmd := &cobra.Command{
		Use:   "edit <transaction-id>",
		Short: "Edit a transaction's date, code, description, or amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			tx, err := e.store.Transactions().Get(args[0])
			if err != nil {
				return err
			}

			// Only flags the user passed overwrite the stored values.
			flags := cmd.Flags()
			if flags.Changed("date") {
				d, err := time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing --date %q: %w", dateStr, err)
				}
				tx.Date = model.Day(d)
			}
			if flags.Changed("code") {
				tx.Code = code
			}
			if flags.Changed("desc") {
				tx.Description = description
			}
			if flags.Changed("deposit") {
				if tx.Deposit, err = parseAmountFlag("--deposit", deposit); err != nil {
					return err
				}
			}
			if flags.Changed("withdrawal") {
				if tx.Withdrawal, err = parseAmountFlag("--withdrawal", withdrawal); err != nil {
					return err
				}
			}

			if err := e.store.Transactions().Put(tx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated transaction %s\n", tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&code, "code", "", "check number or source tag")
	cmd.Flags().StringVar(&description, "desc", "", "description")
	cmd.Flags().StringVar(&deposit, "deposit", "", "deposit amount")
	cmd.Flags().StringVar(&withdrawal, "withdrawal", "", "withdrawal amount")

	return cmd
}

func newTxReconcileCommand(dataDir func() string) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "reconcile <transaction-id>",
		Short: "Mark a transaction reconciled (or clear the flag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			if err := e.ledger.SetReconciled(args[0], !clear); err != nil {
				return err
			}
			state := "reconciled"
			if clear {
				state = "unreconciled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %s %s\n", args[0], state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "clear the reconciled flag instead of setting it")

	return cmd
}

func newTxRemoveCommand(dataDir func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, closeEnv, err := openEnv(dataDir())
			if err != nil {
				return err
			}
			defer closeEnv()

			if err := e.store.Transactions().Delete(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
			return nil
		},
	}
}

func parseAmountFlag(flag, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", flag, value, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", flag)
	}
	return d, nil
}
