package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Checking")
	cfg.Import.ReconcileNew = true
	cfg.Register.Sort = "newest"

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Checking", got.Ledger.DefaultAccount)
	assert.True(t, got.Import.ReconcileNew)
	assert.False(t, got.Import.SyncMode)
	assert.Equal(t, "newest", got.Register.Sort)
}

func TestDefaults(t *testing.T) {
	cfg := Default("")
	assert.Empty(t, cfg.Ledger.DefaultAccount)
	assert.False(t, cfg.Import.ReconcileNew)
	assert.False(t, cfg.Import.SyncMode)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Checking")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "default_account: Checking")
	assert.Contains(t, contents, "reconcile_new: false")
	assert.Contains(t, contents, "sync_mode: false")
}

func TestPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("data", FileName), Path("data"))
	assert.Equal(t, filepath.Join("data", DBFileName), DBPath("data"))
}
