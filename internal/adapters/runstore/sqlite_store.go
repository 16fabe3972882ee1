/*
Package runstore persists benchmark samples to a SQLite database so
runs can be compared across invocations.
*/
package runstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/AntonioJCosta/tally/internal/core/domain/bench"
	"github.com/AntonioJCosta/tally/internal/core/ports"
	_ "modernc.org/sqlite"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS bench_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    strategy TEXT NOT NULL,
    input_size INTEGER NOT NULL,
    elapsed_ns INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bench_runs_strategy ON bench_runs(strategy);
CREATE INDEX IF NOT EXISTS idx_bench_runs_size ON bench_runs(input_size);
`

// SQLiteStore implements the RunStore interface on a SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the run database at dbPath and
// bootstraps the schema.
func NewSQLiteStore(dbPath string) (ports.RunStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open run database %s: %w", dbPath, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize run database schema: %w", err)
	}

	return &SQLiteStore{db: db, path: dbPath}, nil
}

// SaveSamples stores the whole batch inside one transaction, so a
// failed insert leaves no partial run behind.
func (s *SQLiteStore) SaveSamples(samples []bench.Sample) error {
	if len(samples) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO bench_runs (strategy, input_size, elapsed_ns) VALUES (?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sample := range samples {
		if _, err := stmt.Exec(sample.Strategy, sample.Size, sample.Elapsed.Nanoseconds()); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert sample (%s, %d): %w", sample.Strategy, sample.Size, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	return nil
}

// ListRuns returns persisted runs newest first. limit <= 0 returns
// everything.
func (s *SQLiteStore) ListRuns(limit int) ([]bench.Run, error) {
	query := "SELECT run_id, created_at, strategy, input_size, elapsed_ns FROM bench_runs ORDER BY run_id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	runs := []bench.Run{}
	for rows.Next() {
		var run bench.Run
		var createdAt string
		var elapsedNS int64
		if err := rows.Scan(&run.ID, &createdAt, &run.Strategy, &run.Size, &elapsedNS); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		run.Elapsed = time.Duration(elapsedNS)
		// SQLite stores CURRENT_TIMESTAMP as "2006-01-02 15:04:05".
		if ts, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			run.CreatedAt = ts
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run rows: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
