package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"gomonte/domain/core"
	"gomonte/domain/run"
	"gomonte/internal/errors"
	"gomonte/ports"
)

// RunRepositoryImpl implements ports.RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// Migrate creates the simulation_runs table if it does not exist
func Migrate(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS simulation_runs (
			id            UUID PRIMARY KEY,
			scenario      TEXT NOT NULL,
			seed          BIGINT NOT NULL,
			samples       BIGINT NOT NULL,
			successes     BIGINT NOT NULL DEFAULT 0,
			estimate      DOUBLE PRECISION NOT NULL DEFAULT 0,
			target        DOUBLE PRECISION NOT NULL DEFAULT 0,
			status        TEXT NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			created_at    TIMESTAMPTZ NOT NULL,
			completed_at  TIMESTAMPTZ
		)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to create simulation_runs table")
	}
	return nil
}

// Save inserts or updates a run record
func (r *RunRepositoryImpl) Save(ctx context.Context, rec *run.Run) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO simulation_runs (id, scenario, seed, samples, successes, estimate, target, status, error_message, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			samples = EXCLUDED.samples,
			successes = EXCLUDED.successes,
			estimate = EXCLUDED.estimate,
			target = EXCLUDED.target,
			status = EXCLUDED.status,
			error_message = EXCLUDED.error_message,
			completed_at = EXCLUDED.completed_at
	`, rec.ID.String(), rec.Scenario, rec.Seed, rec.Samples, rec.Successes, rec.Estimate,
		rec.Target, rec.Status, rec.Error, rec.CreatedAt, rec.CompletedAt)

	if err != nil {
		return errors.Wrap(err, "failed to save run")
	}
	return nil
}

// Get retrieves a run by ID
func (r *RunRepositoryImpl) Get(ctx context.Context, id core.RunID) (*run.Run, error) {
	var rec run.Run
	err := r.db.GetContext(ctx, &rec, `
		SELECT id, scenario, seed, samples, successes, estimate, target, status, error_message, created_at, completed_at
		FROM simulation_runs
		WHERE id = $1
	`, id.String())

	if err == sql.ErrNoRows {
		return nil, errors.NotFound("run")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load run")
	}
	return &rec, nil
}

// List returns runs ordered by creation time, newest first
func (r *RunRepositoryImpl) List(ctx context.Context, limit int) ([]*run.Run, error) {
	if limit <= 0 {
		limit = 50
	}

	runs := []*run.Run{}
	err := r.db.SelectContext(ctx, &runs, `
		SELECT id, scenario, seed, samples, successes, estimate, target, status, error_message, created_at, completed_at
		FROM simulation_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}
	return runs, nil
}
