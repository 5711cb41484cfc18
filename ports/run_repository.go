package ports

import (
	"context"

	"gomonte/domain/core"
	"gomonte/domain/run"
)

// RunRepository persists simulation run records.
type RunRepository interface {
	// Save inserts or updates a run record.
	Save(ctx context.Context, r *run.Run) error

	// Get retrieves a run by ID.
	Get(ctx context.Context, id core.RunID) (*run.Run, error)

	// List returns runs ordered by creation time, newest first.
	List(ctx context.Context, limit int) ([]*run.Run, error)
}
