// Package analysis provides statistical summaries of simulation output:
// descriptive statistics over a run's trailing estimates, binomial
// confidence intervals for the success ratio, and a chi-square uniformity
// check for categorical draws.
package analysis

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"gomonte/internal/errors"
)

// EstimateSummary describes how a run's estimate behaved over its tail.
type EstimateSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// SummarizeEstimates computes descriptive statistics over a window of
// running estimates (typically the tail of a run's convergence path).
func SummarizeEstimates(estimates []float64) (EstimateSummary, error) {
	summary := EstimateSummary{}
	if len(estimates) == 0 {
		return summary, errors.InvalidArgument("no estimates to summarize")
	}

	mean, err := stats.Mean(estimates)
	if err != nil {
		return summary, err
	}

	stdDev, err := stats.StandardDeviation(estimates)
	if err != nil {
		return summary, err
	}

	min, err := stats.Min(estimates)
	if err != nil {
		return summary, err
	}

	max, err := stats.Max(estimates)
	if err != nil {
		return summary, err
	}

	summary.Mean = mean
	summary.StdDev = stdDev
	summary.Min = min
	summary.Max = max
	return summary, nil
}

// WilsonInterval returns the Wilson score interval for a binomial success
// ratio at the given confidence level (e.g. 0.95). It behaves better than
// the normal approximation for ratios near 0 or 1 and for small n.
func WilsonInterval(successes, total int, confidence float64) (low, high float64, err error) {
	if total <= 0 {
		return 0, 0, errors.InvalidArgument("total must be positive")
	}
	if successes < 0 || successes > total {
		return 0, 0, errors.InvalidArgument("successes must be within [0, total]")
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, 0, errors.InvalidArgument("confidence must be in (0, 1)")
	}

	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	n := float64(total)
	p := float64(successes) / n

	denom := 1 + z*z/n
	center := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom

	return center - margin, center + margin, nil
}

// ChiSquareUniform tests observed category counts against a uniform
// expectation and returns the test statistic and p-value. A small p-value
// indicates the draws are unlikely to come from a uniform source.
func ChiSquareUniform(counts []int) (statistic, pValue float64, err error) {
	if len(counts) < 2 {
		return 0, 0, errors.InvalidArgument("need at least two categories")
	}

	total := 0
	for _, c := range counts {
		if c < 0 {
			return 0, 0, errors.InvalidArgument("counts must be non-negative")
		}
		total += c
	}
	if total == 0 {
		return 0, 0, errors.InvalidArgument("need at least one observation")
	}

	expected := float64(total) / float64(len(counts))
	for _, c := range counts {
		diff := float64(c) - expected
		statistic += diff * diff / expected
	}

	chi2 := distuv.ChiSquared{K: float64(len(counts) - 1)}
	pValue = 1 - chi2.CDF(statistic)
	return statistic, pValue, nil
}
