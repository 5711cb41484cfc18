package scenario

import (
	"math"

	"gomonte/domain/gen"
)

// Pi estimates pi by sampling points in the unit square and testing whether
// they fall inside the quarter circle. The inside-ratio converges to pi/4,
// so the estimate is 4r.
type Pi struct{}

func (Pi) Name() string { return "pi" }
func (Pi) Description() string {
	return "Estimate pi from uniform points in the unit square (4 * inside-circle ratio)"
}

func (Pi) Outcome() gen.Generator[bool] {
	return gen.Map2(gen.Float(), gen.Float(), func(x, y float64) bool {
		return x*x+y*y <= 1
	})
}

func (Pi) Estimate(ratio float64) float64 { return 4 * ratio }
func (Pi) Target() float64                { return math.Pi }
