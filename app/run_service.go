package app

import (
	"context"

	"gomonte/domain/core"
	"gomonte/domain/run"
	"gomonte/internal"
	"gomonte/internal/errors"
	"gomonte/ports"
)

// RunService executes scenarios and records the results.
type RunService struct {
	driver *Driver
	repo   ports.RunRepository
	logger *internal.Logger
}

// NewRunService creates a run service backed by the given repository
func NewRunService(repo ports.RunRepository, logger *internal.Logger) *RunService {
	return &RunService{
		driver: NewDriver(),
		repo:   repo,
		logger: logger,
	}
}

// Execute runs a scenario to completion, persists the run record, and
// returns it together with the convergence path sampled at reportEvery
// intervals (nil path if reportEvery is 0).
func (s *RunService) Execute(ctx context.Context, sc ports.Scenario, seed int64, samples, reportEvery int) (*run.Run, []run.Sample, error) {
	rec := run.NewRun(sc.Name(), seed, samples)
	rec.Status = run.StatusRunning
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, nil, errors.Wrap(err, "failed to record run start")
	}

	var path []run.Sample
	opts := SimOptions{
		Seed:        seed,
		MaxSamples:  samples,
		ReportEvery: reportEvery,
	}
	if reportEvery > 0 {
		opts.OnSample = func(sm run.Sample) {
			path = append(path, sm)
		}
	}

	s.logger.Info("running scenario %s: seed=%d samples=%d", sc.Name(), seed, samples)
	result, err := s.driver.Simulate(ctx, sc, opts)
	if err != nil {
		rec.Fail(err.Error())
		if saveErr := s.repo.Save(ctx, rec); saveErr != nil {
			s.logger.Error("failed to record run failure: %v", saveErr)
		}
		return nil, nil, err
	}

	rec.Complete(result.Successes, result.Estimate, sc.Target())
	rec.Samples = result.Samples
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, nil, errors.Wrap(err, "failed to record run completion")
	}

	s.logger.Info("scenario %s complete: estimate=%.6f target=%.6f", sc.Name(), result.Estimate, sc.Target())
	return rec, path, nil
}

// Get retrieves a recorded run by ID.
func (s *RunService) Get(ctx context.Context, id core.RunID) (*run.Run, error) {
	return s.repo.Get(ctx, id)
}

// List returns recorded runs, newest first.
func (s *RunService) List(ctx context.Context, limit int) ([]*run.Run, error) {
	return s.repo.List(ctx, limit)
}
