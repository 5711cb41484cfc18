// Package testkit provides in-memory adapters used by tests, the CLI and
// demo mode, so simulations can run without external services.
package testkit

import (
	"context"
	"sort"
	"sync"

	"gomonte/domain/core"
	"gomonte/domain/run"
	"gomonte/internal/errors"
)

// InMemoryRunRepository implements ports.RunRepository with a map guarded by
// a mutex. Records are copied on the way in and out so callers never share
// mutable state with the store.
type InMemoryRunRepository struct {
	mu   sync.RWMutex
	runs map[core.RunID]*run.Run
}

// NewInMemoryRunRepository creates an empty in-memory run repository
func NewInMemoryRunRepository() *InMemoryRunRepository {
	return &InMemoryRunRepository{runs: make(map[core.RunID]*run.Run)}
}

// Save inserts or updates a run record
func (r *InMemoryRunRepository) Save(_ context.Context, rec *run.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *rec
	r.runs[rec.ID] = &cp
	return nil
}

// Get retrieves a run by ID
func (r *InMemoryRunRepository) Get(_ context.Context, id core.RunID) (*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.runs[id]
	if !ok {
		return nil, errors.NotFound("run")
	}
	cp := *rec
	return &cp, nil
}

// List returns runs ordered by creation time, newest first
func (r *InMemoryRunRepository) List(_ context.Context, limit int) ([]*run.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*run.Run, 0, len(r.runs))
	for _, rec := range r.runs {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
