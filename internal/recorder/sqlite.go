package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id         TEXT NOT NULL,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			name           TEXT,
			display_model  TEXT,
			target         TEXT,
			samples        INTEGER,
			split_index    INTEGER,
			first_price    REAL,
			last_price     REAL,
			percent_change REAL,
			is_up          INTEGER,
			error          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_symbol ON runs(symbol, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, timestamp, symbol, name, display_model, target, samples, split_index,
		 first_price, last_price, percent_change, is_up, error)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.RunID, rec.Timestamp.Unix(), rec.Symbol, rec.Name, rec.DisplayModel, rec.Target,
		rec.Samples, rec.SplitIndex, rec.FirstPrice, rec.LastPrice, rec.PercentChange,
		rec.IsUp, rec.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
