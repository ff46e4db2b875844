package cycle

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

var ErrNoCycles = errors.New("no cycles to aggregate")

// Summary aggregates per-cycle growth values for one analysis request.
//
// Ratio is a hurdle-adjusted dispersion ratio, not an annualized Sharpe
// ratio: it divides excess period-over-period growth by the dispersion of
// that growth. Known approximation, kept on purpose.
type Summary struct {
	AverageGrowth float64
	StdDev        float64
	Ratio         float64
	RiskFreeRate  float64
}

// Summarize reduces per-cycle results into summary statistics. StdDev is
// the population standard deviation and is defined as 0 for a single
// cycle; Ratio is 0 whenever StdDev is 0.
func Summarize(results []Result, riskFreeRate float64) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoCycles
	}
	growths := make([]float64, len(results))
	for i, r := range results {
		growths[i] = r.Growth
	}

	avg := stat.Mean(growths, nil)
	sd := 0.0
	if len(growths) > 1 {
		sd = math.Sqrt(stat.PopVariance(growths, nil))
	}
	ratio := 0.0
	if sd != 0 {
		ratio = (avg - riskFreeRate) / sd
	}

	return Summary{
		AverageGrowth: avg,
		StdDev:        sd,
		Ratio:         ratio,
		RiskFreeRate:  riskFreeRate,
	}, nil
}

// CAGR returns the compound annual growth rate in percent for a holding
// that moved from oldestStart to newestEnd over totalYears. The second
// return is false when the inputs cannot produce a meaningful rate
// (non-positive span or starting price); callers omit the field then.
func CAGR(oldestStart, newestEnd, totalYears float64) (float64, bool) {
	if totalYears <= 0 || oldestStart <= 0 {
		return 0, false
	}
	return (math.Pow(newestEnd/oldestStart, 1/totalYears) - 1) * 100, true
}
