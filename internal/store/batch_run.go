package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type BatchRunStore struct {
	db *sqlx.DB
}

var (
	TriggerTypeManual    = "manual"
	TriggerTypeScheduled = "scheduled"
)

var (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusPartial = "partial"
)

func (bs *BatchRunStore) InsertBatchRun(ctx context.Context, run *BatchRun) error {
	query := `INSERT INTO batch_runs (
		trigger_type,
		status,
		states_computed,
		states_skipped,
		warning_count,
		started_at,
		finished_at
	) VALUES (
		:trigger_type,
		:status,
		:states_computed,
		:states_skipped,
		:warning_count,
		:started_at,
		:finished_at
	) RETURNING id`

	rows, err := bs.db.NamedQueryContext(ctx, query, run)
	if err != nil {
		return fmt.Errorf("failed to insert batch run: %w", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&run.ID); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (bs *BatchRunStore) GetLatest(ctx context.Context, limit int) ([]BatchRun, error) {
	query := `SELECT * FROM batch_runs ORDER BY started_at DESC LIMIT $1`

	runs := []BatchRun{}
	if err := bs.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to query batch runs: %w", err)
	}
	return runs, nil
}
