package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Compile-time assertion: *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS run_summary (
	run_id        TEXT PRIMARY KEY,
	timestamp     TEXT NOT NULL,
	input_file    TEXT NOT NULL,
	main_column   TEXT,
	group_count   INTEGER NOT NULL,
	terms_total   INTEGER NOT NULL,
	query_count   INTEGER NOT NULL,
	failed_labels INTEGER NOT NULL,
	group_logic   TEXT
);`

// SQLiteStore keeps run summaries in an embedded SQLite database, for
// setups where the audit log is queried rather than eyeballed.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (creating if needed) the database at path and
// ensures the run_summary table exists.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("audit db: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("audit db schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record inserts one summary row.
func (s *SQLiteStore) Record(ctx context.Context, sum Summary) error {
	const q = `INSERT INTO run_summary
		(run_id, timestamp, input_file, main_column, group_count, terms_total, query_count, failed_labels, group_logic)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, q,
		sum.RunID,
		sum.Timestamp.Format(time.RFC3339),
		sum.InputFile,
		sum.MainColumn,
		sum.GroupCount,
		sum.TermsTotal,
		sum.QueryCount,
		sum.FailedLabels,
		sum.GroupLogic,
	)
	if err != nil {
		return fmt.Errorf("audit db insert: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
