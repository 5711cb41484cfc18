// Package scenario contains the built-in Monte Carlo experiments. Each
// scenario is a pure generator graph over gomonte/domain/gen: building one
// consumes no randomness, and a fixed (scenario, seed) pair reproduces the
// same outcome sequence forever.
package scenario

import "gomonte/domain/gen"

// Coin is a fair coin toss: the running true-ratio converges to 0.5.
type Coin struct{}

func (Coin) Name() string        { return "coin" }
func (Coin) Description() string { return "Fair coin toss; the heads ratio converges to 0.5" }

func (Coin) Outcome() gen.Generator[bool] {
	return gen.Bool()
}

func (Coin) Estimate(ratio float64) float64 { return ratio }
func (Coin) Target() float64                { return 0.5 }
