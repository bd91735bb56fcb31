package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/config"
	"github.com/checkbook-dev/checkbook/internal/ledger"
	"github.com/checkbook-dev/checkbook/internal/store"
)

func newInitCommand(dataDir func() string) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the checkbook data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, dataDir(), account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "create an initial account with this name")

	return cmd
}

func runInit(cmd *cobra.Command, dataDir, account string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	cfgPath := config.Path(dataDir)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", cfgPath)
	}

	// Opening the store creates the database schema.
	st, err := store.Open(config.DBPath(dataDir))
	if err != nil {
		return err
	}
	defer st.Close()

	if account != "" {
		if _, err := ledger.NewService(st).CreateAccount(account); err != nil {
			return err
		}
	}

	if err := config.Save(cfgPath, config.Default(account)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized checkbook at %s\n", dataDir)
	return nil
}
