package app

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"gomonte/domain/stream"
	"gomonte/internal/errors"
	"gomonte/ports"
)

// chunkSize is the number of samples one parallel task draws from its own
// split stream branch. Chunk boundaries depend only on the sample count, so
// the result is identical for any worker limit.
const chunkSize = 8192

// SimulateParallel runs samples across multiple goroutines, giving each
// chunk its own branch split off the seeded root state. Branches never share
// state, so no synchronization is needed around the draws themselves, and a
// fixed (seed, samples) pair is fully reproducible regardless of how many
// workers run concurrently.
func (d *Driver) SimulateParallel(ctx context.Context, sc ports.Scenario, seed int64, samples, workers int) (SimResult, error) {
	if samples < 1 {
		return SimResult{}, errors.InvalidArgument("samples must be positive")
	}
	if workers < 1 {
		return SimResult{}, errors.InvalidArgument("workers must be positive")
	}

	chunks := (samples + chunkSize - 1) / chunkSize
	branches := make([]stream.State, chunks)
	root := stream.Seed(seed)
	for i := range branches {
		root, branches[i] = root.Split()
	}

	sem := semaphore.NewWeighted(int64(workers))
	results := make([]int, chunks)

	var wg sync.WaitGroup
	for i := 0; i < chunks; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return SimResult{}, err
		}

		n := chunkSize
		if i == chunks-1 {
			n = samples - i*chunkSize
		}

		wg.Add(1)
		go func(idx, n int, st stream.State) {
			defer wg.Done()
			defer sem.Release(1)

			outcome := sc.Outcome()
			hits := 0
			for j := 0; j < n; j++ {
				var hit bool
				hit, st = outcome(st)
				if hit {
					hits++
				}
			}
			results[idx] = hits
		}(i, n, branches[i])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return SimResult{}, err
	}

	successes := 0
	for _, hits := range results {
		successes += hits
	}

	ratio := float64(successes) / float64(samples)
	return SimResult{
		Samples:   samples,
		Successes: successes,
		Ratio:     ratio,
		Estimate:  sc.Estimate(ratio),
	}, nil
}
