package audit

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary(id string) Summary {
	return Summary{
		RunID:      id,
		Timestamp:  time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		InputFile:  "terms.csv",
		MainColumn: "Platform",
		GroupCount: 2,
		TermsTotal: 5,
		QueryCount: 2,
		GroupLogic: "Platform:double_quote/OR;Phrase:none/OR",
	}
}

func TestNewRunID_ShortHex(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	assert.Len(t, a, 10)
	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "-")
}

func TestCSVStore_AppendsWithSingleHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.csv")
	store := NewCSVStore(path)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Record(ctx, sampleSummary("run-1")))
	require.NoError(t, store.Record(ctx, sampleSummary("run-2")))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "one header plus two records")

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "run-1", rows[1][0])
	assert.Equal(t, "run-2", rows[2][0])
	assert.Equal(t, "2026-03-14T09:26:53Z", rows[1][1])
	assert.Equal(t, "Platform", rows[1][3])
}

func TestSQLiteStore_RecordAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	store, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(ctx, sampleSummary("run-a")))
	require.NoError(t, store.Record(ctx, sampleSummary("run-b")))

	var count int
	require.NoError(t, store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM run_summary").Scan(&count))
	assert.Equal(t, 2, count)

	var mainCol string
	require.NoError(t, store.db.QueryRowContext(ctx,
		"SELECT main_column FROM run_summary WHERE run_id = ?", "run-a").Scan(&mainCol))
	assert.Equal(t, "Platform", mainCol)
}

func TestSQLiteStore_DuplicateRunID_Error(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	ctx := context.Background()

	store, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(ctx, sampleSummary("same")))
	require.Error(t, store.Record(ctx, sampleSummary("same")))
}
