// Package app drives simulations: it repeatedly runs a scenario's boolean
// generator against a seeded stream, folds the outcomes into a running
// estimate, and applies explicit stopping conditions. The generator core
// stays pure; everything loop-shaped lives here.
package app

import (
	"context"
	"math"

	"gomonte/domain/run"
	"gomonte/domain/stream"
	"gomonte/internal/errors"
	"gomonte/ports"
)

// ctxCheckInterval is how many samples run between context checks.
const ctxCheckInterval = 4096

// Convergence is an optional early-stop rule: stop once the estimate has
// stayed within Tolerance of the scenario target for Window consecutive
// samples.
type Convergence struct {
	Tolerance float64
	Window    int
}

// SimOptions configures one simulation.
type SimOptions struct {
	// Seed fixes the entire outcome sequence. The same scenario, seed and
	// sample count reproduce identical results on any run.
	Seed int64

	// MaxSamples bounds the loop; required and positive.
	MaxSamples int

	// ReportEvery invokes OnSample after every ReportEvery-th sample
	// (and always after the final one). 0 disables reporting.
	ReportEvery int

	// OnSample observes the running estimate as the simulation progresses.
	OnSample func(run.Sample)

	// Converge optionally stops the loop before MaxSamples.
	Converge *Convergence
}

// SimResult is the final accumulator state of a simulation.
type SimResult struct {
	Samples   int
	Successes int
	Ratio     float64
	Estimate  float64
}

// Driver runs scenarios to completion.
type Driver struct{}

// NewDriver creates a simulation driver
func NewDriver() *Driver {
	return &Driver{}
}

// Simulate runs the scenario's outcome generator opts.MaxSamples times,
// threading one seeded stream state across all samples. Threading the state
// is equivalent to re-chaining the generator onto itself each iteration; it
// just avoids rebuilding the chain.
func (d *Driver) Simulate(ctx context.Context, sc ports.Scenario, opts SimOptions) (SimResult, error) {
	if opts.MaxSamples < 1 {
		return SimResult{}, errors.InvalidArgument("max samples must be positive")
	}
	if opts.ReportEvery < 0 {
		return SimResult{}, errors.InvalidArgument("report interval must be non-negative")
	}
	if opts.Converge != nil && (opts.Converge.Tolerance <= 0 || opts.Converge.Window < 1) {
		return SimResult{}, errors.InvalidArgument("convergence needs positive tolerance and window")
	}

	outcome := sc.Outcome()
	st := stream.Seed(opts.Seed)

	successes := 0
	within := 0
	total := 0

	for total < opts.MaxSamples {
		if total%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return SimResult{}, err
			}
		}

		var hit bool
		hit, st = outcome(st)
		total++
		if hit {
			successes++
		}

		ratio := float64(successes) / float64(total)
		estimate := sc.Estimate(ratio)

		if opts.OnSample != nil && opts.ReportEvery > 0 &&
			(total%opts.ReportEvery == 0 || total == opts.MaxSamples) {
			opts.OnSample(run.Sample{
				SampleSize: total,
				Successes:  successes,
				Estimate:   estimate,
			})
		}

		if opts.Converge != nil {
			if math.Abs(estimate-sc.Target()) <= opts.Converge.Tolerance {
				within++
				if within >= opts.Converge.Window {
					break
				}
			} else {
				within = 0
			}
		}
	}

	ratio := float64(successes) / float64(total)
	return SimResult{
		Samples:   total,
		Successes: successes,
		Ratio:     ratio,
		Estimate:  sc.Estimate(ratio),
	}, nil
}
