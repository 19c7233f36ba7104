package bench

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists benchmark runs to SQLite so node counts and timings can be
// compared across engine changes.
type Store struct {
	db *sql.DB
}

func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS bench_runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME,
		max_depth INTEGER,
		time_ms INTEGER
	);
	CREATE TABLE IF NOT EXISTS bench_results (
		run_id TEXT,
		size INTEGER,
		position INTEGER,
		mode TEXT,
		nodes INTEGER,
		cutoffs INTEGER,
		elapsed_ms REAL,
		move_row INTEGER,
		move_col INTEGER,
		score REAL,
		FOREIGN KEY (run_id) REFERENCES bench_runs(id)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveComparison(c Comparison) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(
		`INSERT INTO bench_runs (id, started_at, max_depth, time_ms) VALUES (?, ?, ?, ?)`,
		c.RunID, c.StartedAt, c.MaxDepth, c.TimeMs,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for _, m := range c.Results {
		if _, err := tx.Exec(
			`INSERT INTO bench_results (run_id, size, position, mode, nodes, cutoffs, elapsed_ms, move_row, move_col, score)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.RunID, m.Size, m.Position, m.Mode, m.Nodes, m.Cutoffs, m.ElapsedMs, m.Move.Row, m.Move.Col, m.Score,
		); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}
	return tx.Commit()
}

// RunSummary is one stored run.
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	MaxDepth  int
	TimeMs    int
}

func (s *Store) Runs() ([]RunSummary, error) {
	rows, err := s.db.Query(`SELECT id, started_at, max_depth, time_ms FROM bench_runs ORDER BY started_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var runs []RunSummary
	for rows.Next() {
		var run RunSummary
		if err := rows.Scan(&run.RunID, &run.StartedAt, &run.MaxDepth, &run.TimeMs); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *Store) ResultsForRun(runID string) ([]Measurement, error) {
	rows, err := s.db.Query(
		`SELECT size, position, mode, nodes, cutoffs, elapsed_ms, move_row, move_col, score
		 FROM bench_results WHERE run_id = ? ORDER BY size, position, mode`,
		runID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []Measurement
	for rows.Next() {
		var m Measurement
		if err := rows.Scan(&m.Size, &m.Position, &m.Mode, &m.Nodes, &m.Cutoffs, &m.ElapsedMs, &m.Move.Row, &m.Move.Col, &m.Score); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
