// Package run defines the records a simulation run leaves behind: what was
// simulated, with which seed, and how the running estimate evolved.
package run

import (
	"time"

	"gomonte/domain/core"
)

// Status tracks the lifecycle of a simulation run.
type Status string

const (
	StatusPending  Status = "pending"
	StatusRunning  Status = "running"
	StatusComplete Status = "complete"
	StatusFailed   Status = "failed"
)

// Run is the persistent record of one simulation run. Together with the
// scenario name, Seed fully determines Estimate: replaying the same scenario
// with the same seed and sample count reproduces the record bit for bit.
type Run struct {
	ID          core.RunID `json:"id" db:"id"`
	Scenario    string     `json:"scenario" db:"scenario"`
	Seed        int64      `json:"seed" db:"seed"`
	Samples     int        `json:"samples" db:"samples"`
	Successes   int        `json:"successes" db:"successes"`
	Estimate    float64    `json:"estimate" db:"estimate"`
	Target      float64    `json:"target" db:"target"`
	Status      Status     `json:"status" db:"status"`
	Error       string     `json:"error,omitempty" db:"error_message"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}

// NewRun creates a pending run record for a scenario.
func NewRun(scenario string, seed int64, samples int) *Run {
	return &Run{
		ID:        core.NewRunID(),
		Scenario:  scenario,
		Seed:      seed,
		Samples:   samples,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// Complete marks the run finished with its final accumulator values.
func (r *Run) Complete(successes int, estimate, target float64) {
	now := time.Now().UTC()
	r.Successes = successes
	r.Estimate = estimate
	r.Target = target
	r.Status = StatusComplete
	r.CompletedAt = &now
}

// Fail marks the run failed with the failure message.
func (r *Run) Fail(msg string) {
	now := time.Now().UTC()
	r.Status = StatusFailed
	r.Error = msg
	r.CompletedAt = &now
}

// Sample is one point on a run's convergence path: the running estimate
// after SampleSize outcomes have been folded in.
type Sample struct {
	SampleSize int     `json:"sample_size"`
	Successes  int     `json:"successes"`
	Estimate   float64 `json:"estimate"`
}
