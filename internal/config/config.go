// Package config reads and writes the checkbook.yaml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the data directory.
const FileName = "checkbook.yaml"

// DBFileName is the SQLite database file name inside the data directory.
const DBFileName = "checkbook.db"

// Config represents the top-level checkbook.yaml configuration.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Import   ImportConfig   `yaml:"import"`
	Register RegisterConfig `yaml:"register"`
}

// LedgerConfig holds ledger-wide settings.
type LedgerConfig struct {
	// DefaultAccount is the account name used when a command is run
	// without --account.
	DefaultAccount string `yaml:"default_account,omitempty"`
}

// RegisterConfig holds persisted register display preferences.
type RegisterConfig struct {
	// Sort is the default display order: "oldest" (default) or "newest".
	Sort string `yaml:"sort,omitempty"`
}

// ImportConfig holds default flags for CSV import.
type ImportConfig struct {
	// ReconcileNew marks unmatched imported rows as reconciled.
	ReconcileNew bool `yaml:"reconcile_new"`
	// SyncMode appends every imported row without touching existing
	// reconciliation state.
	SyncMode bool `yaml:"sync_mode"`
}

// Path returns the config file path for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// DBPath returns the database file path for a data directory.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, DBFileName)
}

// Load reads a checkbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(defaultAccount string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			DefaultAccount: defaultAccount,
		},
	}
}
