package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveShortlist replaces the stored shortlist for a run with the given
// entries. Entries are stored in slice order; Rank is assigned from the
// 1-based position when unset.
func (db *DB) SaveShortlist(ctx context.Context, runID uuid.UUID, entries []ShortlistEntry) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			_ = rErr
		}
	}()

	// Delete existing entries for upsert
	_, _ = tx.Exec(ctx, "DELETE FROM shortlist_entries WHERE run_id = $1", runID)

	for i, entry := range entries {
		rank := entry.Rank
		if rank == 0 {
			rank = i + 1
		}

		profileBytes, err := json.Marshal(entry.Profile)
		if err != nil {
			return fmt.Errorf("failed to marshal profile for %s: %w", entry.Name, err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO shortlist_entries (run_id, rank, name, skills, risk_score, match_score, profile_url, profile)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			runID, rank, entry.Name, entry.Skills, entry.RiskScore, entry.MatchScore, entry.ProfileURL, profileBytes,
		)
		if err != nil {
			return fmt.Errorf("failed to save shortlist entry %d: %w", rank, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit shortlist: %w", err)
	}
	return nil
}

// GetShortlist retrieves the shortlist entries for a run ordered by rank
func (db *DB) GetShortlist(ctx context.Context, runID uuid.UUID) ([]ShortlistEntry, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, rank, name, skills, risk_score, match_score, COALESCE(profile_url, ''), profile, created_at
		 FROM shortlist_entries WHERE run_id = $1 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get shortlist: %w", err)
	}
	defer rows.Close()

	var entries []ShortlistEntry
	for rows.Next() {
		var entry ShortlistEntry
		var profileBytes []byte
		if err := rows.Scan(&entry.ID, &entry.RunID, &entry.Rank, &entry.Name, &entry.Skills, &entry.RiskScore, &entry.MatchScore, &entry.ProfileURL, &profileBytes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan shortlist entry: %w", err)
		}
		if len(profileBytes) > 0 {
			var profile any
			if err := json.Unmarshal(profileBytes, &profile); err == nil {
				entry.Profile = profile
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
