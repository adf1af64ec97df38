package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
)

// ErrEmptyRunID indicates a write or query without a run id.
var ErrEmptyRunID = errors.New("store: empty run id")

// Store is a SQLite-backed archive of GraphReports.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// ":memory:" yields a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has a single writer; one connection also keeps ":memory:" shared.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT NOT NULL,
		category TEXT NOT NULL,
		graphs INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		PRIMARY KEY (id, category)
	);

	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL,
		category TEXT NOT NULL,
		graph_id INTEGER NOT NULL,
		density TEXT NOT NULL,
		algorithm TEXT NOT NULL,
		vertices INTEGER NOT NULL,
		edges INTEGER NOT NULL,
		mst_edges INTEGER NOT NULL,
		total_cost INTEGER NOT NULL,
		operations INTEGER NOT NULL,
		execution_time_ms REAL NOT NULL,
		complete INTEGER NOT NULL,
		PRIMARY KEY (run_id, category, graph_id, algorithm)
	);

	CREATE INDEX IF NOT EXISTS idx_results_algorithm ON results(run_id, algorithm);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveReports writes one row per engine result for every report, plus a run
// row for (runID, category), in a single transaction. Saving the same
// (runID, category) twice replaces the earlier rows.
func (s *Store) SaveReports(ctx context.Context, runID, category string, reports []bench.GraphReport) error {
	if runID == "" {
		return ErrEmptyRunID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE run_id = ? AND category = ?`, runID, category); err != nil {
		return fmt.Errorf("failed to clear results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO runs (id, category, graphs, created_at) VALUES (?, ?, ?, ?)
	`, runID, category, len(reports), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (run_id, category, graph_id, density, algorithm, vertices, edges,
			mst_edges, total_cost, operations, execution_time_ms, complete)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare result statement: %w", err)
	}
	defer stmt.Close()

	for _, rep := range reports {
		for _, res := range []core.MSTResult{rep.Prim, rep.Kruskal} {
			if _, err := stmt.ExecContext(ctx,
				runID, category, rep.GraphID, rep.Density, res.Algorithm,
				rep.InputStats.Vertices, rep.InputStats.Edges,
				len(res.Edges), res.TotalCost, res.Operations, res.ExecutionTimeMS,
				boolToInt(res.Complete()),
			); err != nil {
				return fmt.Errorf("failed to insert result for graph %d (%s): %w", rep.GraphID, res.Algorithm, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// CountResults returns the number of result rows stored for runID.
func (s *Store) CountResults(ctx context.Context, runID string) (int, error) {
	if runID == "" {
		return 0, ErrEmptyRunID
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM results WHERE run_id = ?`, runID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count results: %w", err)
	}

	return n, nil
}

// AlgorithmTotals aggregates one algorithm's rows within a run.
type AlgorithmTotals struct {
	Algorithm       string
	Results         int
	Incomplete      int
	TotalOperations int64
	MeanTimeMS      float64
}

// Totals returns per-algorithm aggregates for runID, ordered by algorithm name.
func (s *Store) Totals(ctx context.Context, runID string) ([]AlgorithmTotals, error) {
	if runID == "" {
		return nil, ErrEmptyRunID
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT algorithm, COUNT(*), SUM(1 - complete), SUM(operations), AVG(execution_time_ms)
		FROM results
		WHERE run_id = ?
		GROUP BY algorithm
		ORDER BY algorithm
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query totals: %w", err)
	}
	defer rows.Close()

	var out []AlgorithmTotals
	for rows.Next() {
		var t AlgorithmTotals
		if err := rows.Scan(&t.Algorithm, &t.Results, &t.Incomplete, &t.TotalOperations, &t.MeanTimeMS); err != nil {
			return nil, fmt.Errorf("failed to scan totals: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals: %w", err)
	}

	return out, nil
}

// CostMismatches counts graphs in runID whose Prim and Kruskal rows are both
// complete yet disagree on total cost.
func (s *Store) CostMismatches(ctx context.Context, runID string) (int, error) {
	if runID == "" {
		return 0, ErrEmptyRunID
	}
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM results p
		JOIN results k
			ON k.run_id = p.run_id AND k.category = p.category AND k.graph_id = p.graph_id
		WHERE p.run_id = ? AND p.algorithm = ? AND k.algorithm = ?
			AND p.complete = 1 AND k.complete = 1 AND p.total_cost <> k.total_cost
	`, runID, core.AlgorithmPrim, core.AlgorithmKruskal).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count mismatches: %w", err)
	}

	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
