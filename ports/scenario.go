package ports

import "gomonte/domain/gen"

// Scenario describes one Monte Carlo experiment: a boolean outcome generator
// plus how the running success ratio maps to the quantity being estimated.
//
// Outcome must return the same generator value semantics on every call: a
// scenario is pure, and the driver may rebuild the generator freely without
// changing results for a fixed seed.
type Scenario interface {
	// Name is the stable identifier used by the CLI, API and run records.
	Name() string

	// Description is a one-line human summary.
	Description() string

	// Outcome builds the boolean generator a single sample draws from.
	Outcome() gen.Generator[bool]

	// Estimate converts the running true-ratio into the estimated quantity
	// (identity for probabilities, 4r for pi estimation).
	Estimate(ratio float64) float64

	// Target is the analytically known value the estimate should converge
	// to, used for convergence stopping and reporting.
	Target() float64
}
