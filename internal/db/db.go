// Package db provides PostgreSQL persistence for sourcing runs and shortlists.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun creates a new sourcing run record and returns its ID
func (db *DB) CreateRun(ctx context.Context, request string, skills []string, seniority string, quantity int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO sourcing_runs (request, skills, seniority, quantity, status)
		 VALUES ($1, $2, $3, $4, 'running')
		 RETURNING id`,
		request, StringArray(skills), seniority, quantity,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// UpdateRunCounts records how many queries, raw results and candidates a run produced
func (db *DB) UpdateRunCounts(ctx context.Context, runID uuid.UUID, queryCount, resultCount, candidateCount int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sourcing_runs SET query_count = $1, result_count = $2, candidate_count = $3 WHERE id = $4`,
		queryCount, resultCount, candidateCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run counts: %w", err)
	}
	return nil
}

// CompleteRun marks a sourcing run as completed
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE sourcing_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		status, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRun retrieves a sourcing run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*SourcingRun, error) {
	var run SourcingRun
	err := db.pool.QueryRow(ctx,
		`SELECT id, request, skills, seniority, quantity, query_count, result_count, candidate_count, status, created_at, completed_at
		 FROM sourcing_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Request, &run.Skills, &run.Seniority, &run.Quantity, &run.QueryCount, &run.ResultCount, &run.CandidateCount, &run.Status, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent sourcing runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]SourcingRun, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, request, skills, seniority, quantity, query_count, result_count, candidate_count, status, created_at, completed_at
		 FROM sourcing_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []SourcingRun
	for rows.Next() {
		var run SourcingRun
		if err := rows.Scan(&run.ID, &run.Request, &run.Skills, &run.Seniority, &run.Quantity, &run.QueryCount, &run.ResultCount, &run.CandidateCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// RunFilters holds optional filters for listing runs
type RunFilters struct {
	Query  string
	Status string
	Limit  int
}

// ListRunsFiltered retrieves runs with optional filters
func (db *DB) ListRunsFiltered(ctx context.Context, filters RunFilters) ([]SourcingRun, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, request, skills, seniority, quantity, query_count, result_count, candidate_count, status, created_at, completed_at
		FROM sourcing_runs WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Query != "" {
		query += fmt.Sprintf(" AND request ILIKE $%d", argNum)
		args = append(args, "%"+filters.Query+"%")
		argNum++
	}
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, filters.Status)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []SourcingRun
	for rows.Next() {
		var run SourcingRun
		if err := rows.Scan(&run.ID, &run.Request, &run.Skills, &run.Seniority, &run.Quantity, &run.QueryCount, &run.ResultCount, &run.CandidateCount, &run.Status, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// DeleteRun deletes a sourcing run and its shortlist entries (via cascade)
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM sourcing_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
