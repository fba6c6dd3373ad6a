package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "runs.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()

	now := time.Unix(1704300000, 0)
	require.NoError(t, r.RecordRun(&RunRecord{
		RunID: "run-1", Timestamp: now, Symbol: "AAPL", Name: "Apple",
		DisplayModel: "phat", Target: "inky_stocks_phat.png",
		Samples: 21, SplitIndex: 16, FirstPrice: 100, LastPrice: 105, PercentChange: 5, IsUp: true,
	}))
	require.NoError(t, r.RecordRun(&RunRecord{
		RunID: "run-1", Timestamp: now, Symbol: "BAD", Error: "market data unavailable",
	}))

	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM runs WHERE run_id = ?`, "run-1").Scan(&count))
	assert.Equal(t, 2, count)

	var split int
	var pct float64
	var isUp bool
	require.NoError(t, r.db.QueryRow(`SELECT split_index, percent_change, is_up FROM runs WHERE symbol = 'AAPL'`).
		Scan(&split, &pct, &isUp))
	assert.Equal(t, 16, split)
	assert.Equal(t, 5.0, pct)
	assert.True(t, isUp)

	var msg string
	require.NoError(t, r.db.QueryRow(`SELECT error FROM runs WHERE symbol = 'BAD'`).Scan(&msg))
	assert.Equal(t, "market data unavailable", msg)
}

func TestSQLiteRecorder_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	r, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, r.RecordRun(&RunRecord{RunID: "a", Timestamp: time.Now(), Symbol: "X"}))
	require.NoError(t, r.Close())

	r, err = NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer r.Close()
	var count int
	require.NoError(t, r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count))
	assert.Equal(t, 1, count)
}
