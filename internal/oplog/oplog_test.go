package oplog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRead(t *testing.T) {
	dir := t.TempDir()

	entries := []Entry{
		{
			Timestamp: time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
			Action:    "csv-import",
			Details:   "bank.csv: 2 updated, 3 added",
			AccountID: "acct-1",
			Count:     5,
		},
		{
			Timestamp: time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
			Action:    "purge",
			Details:   "cutoff 2024-01-31",
			AccountID: "acct-1",
			Count:     12,
		},
	}

	require.NoError(t, Append(dir, entries[:1]))
	require.NoError(t, Append(dir, entries[1:]))

	got, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "csv-import", got[0].Action)
	assert.Equal(t, 5, got[0].Count)
	assert.Equal(t, entries[0].Timestamp, got[0].Timestamp)
	assert.Equal(t, "purge", got[1].Action)
	assert.Equal(t, "acct-1", got[1].AccountID)
}

func TestReadMissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	e := Entry{Timestamp: time.Now().UTC(), Action: "restore", Count: 1}

	require.NoError(t, Append(dir, []Entry{e}))
	require.NoError(t, Append(dir, []Entry{e}))

	data, err := os.ReadFile(filepath.Join(dir, "logs", "ops-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestUnmarshalEntryErrors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"too", "few"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{"NOTATIME", "a", "d", "id", "1"})
	assert.Error(t, err)

	_, err = UnmarshalEntry([]string{time.Now().Format(time.RFC3339), "a", "d", "id", "NaN"})
	assert.Error(t, err)
}
