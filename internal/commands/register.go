package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/ledger"
	"github.com/checkbook-dev/checkbook/internal/model"
)

func newRegisterCommand(dataDir func() string) *cobra.Command {
	var account, from, to, desc, reconciled, amount, sortOrder string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Show an account's register with running balances",
		Long: `Register lists an account's transactions with a running balance. The
filter flags narrow which transactions appear; balances are computed over
the filtered set in date order, so a filtered register balances on its own.`,
		Args: cobra.NoArgs,
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

			filter, err := buildFilter(from, to, desc, reconciled, amount)
			if err != nil {
				return err
			}
			if sortOrder == "" {
				sortOrder = e.cfg.Register.Sort
			}
			switch sortOrder {
			case "", "oldest":
			case "newest":
				filter.NewestFirst = true
			default:
				return fmt.Errorf("--sort must be 'oldest' or 'newest', got %q", sortOrder)
			}

			lines, err := e.ledger.Register(a.ID, filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCODE\tDESCRIPTION\tDEPOSIT\tWITHDRAWAL\tR\tBALANCE")
			for _, line := range lines {
				r := ""
				if line.Reconciled {
					r = "✓"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					line.Date.Format("2006-01-02"),
					line.Code,
					line.Description,
					line.Deposit.StringFixed(2),
					line.Withdrawal.StringFixed(2),
					r,
					line.Balance.StringFixed(2),
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "account name or ID")
	cmd.Flags().StringVar(&from, "from", "", "only transactions on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "only transactions on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&desc, "desc", "", "only descriptions containing this text (case-insensitive)")
	cmd.Flags().StringVar(&reconciled, "reconciled", "all", "reconciliation state: all, reconciled, or unreconciled")
	cmd.Flags().StringVar(&amount, "amount", "", "only transactions whose deposit or withdrawal equals this amount")
	cmd.Flags().StringVar(&sortOrder, "sort", "", "display order: oldest or newest (default from config)")

	return cmd
}

func buildFilter(from, to, desc, reconciled, amount string) (ledger.Filter, error) {
	var f ledger.Filter

	if from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return f, fmt.Errorf("parsing --from %q: %w", from, err)
		}
		f.From = model.Day(d)
	}
	if to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return f, fmt.Errorf("parsing --to %q: %w", to, err)
		}
		f.To = model.Day(d)
	}
	f.Description = desc

	switch reconciled {
	case "", "all":
	case "reconciled":
		v := true
		f.Reconciled = &v
	case "unreconciled":
		v := false
		f.Reconciled = &v
	default:
		return f, fmt.Errorf("--reconciled must be 'all', 'reconciled', or 'unreconciled', got %q", reconciled)
	}

	if amount != "" {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return f, fmt.Errorf("parsing --amount %q: %w", amount, err)
		}
		f.Amount = &d
	}

	return f, nil
}
