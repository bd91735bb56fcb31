// Package commands wires the checkbook CLI.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/checkbook-dev/checkbook/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:     "checkbook",
		Short:   "Personal checkbook ledger with bank CSV reconciliation",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "",
		"data directory (default $CHECKBOOK_DATA or ~/.checkbook)")

	resolve := func() string { return resolveDataDir(dataDir) }

	rootCmd.AddCommand(newInitCommand(resolve))
	rootCmd.AddCommand(newAccountCommand(resolve))
	rootCmd.AddCommand(newTxCommand(resolve))
	rootCmd.AddCommand(newRegisterCommand(resolve))
	rootCmd.AddCommand(newImportCommand(resolve))
	rootCmd.AddCommand(newExportCommand(resolve))
	rootCmd.AddCommand(newBackupCommand(resolve))
	rootCmd.AddCommand(newRestoreCommand(resolve))
	rootCmd.AddCommand(newPurgeCommand(resolve))

	return rootCmd
}

// resolveDataDir picks the data directory: the --data flag, then
// $CHECKBOOK_DATA, then ~/.checkbook.
func resolveDataDir(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("CHECKBOOK_DATA"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".checkbook"
	}
	return filepath.Join(home, ".checkbook")
}
