package gop

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// minSlopeSamples is the smallest window that still gives a meaningful
// least-squares log-log fit.
const minSlopeSamples = 3

// InnerSlope estimates the inner log-slope d ln(rho) / d ln(r) over
// (0, rMaxKpc] with an ordinary least-squares fit in log-log space.
// Samples with non-positive radius or density are excluded before fitting.
//
// When fewer than three samples qualify the slope is undefined: ok is
// false and slope is NaN. That is a normal outcome of window filtering,
// not a failure; callers must check ok rather than trust the float.
//
// For an exact power law rho = C * r^m on the qualifying window the
// returned slope equals m to floating-point precision.
func InnerSlope(radiiKpc, density []float64, rMaxKpc float64) (slope float64, ok bool) {
	n := min(len(radiiKpc), len(density))
	lnR := make([]float64, 0, n)
	lnRho := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if radiiKpc[i] <= 0 || radiiKpc[i] > rMaxKpc || density[i] <= 0 {
			continue
		}
		lnR = append(lnR, math.Log(radiiKpc[i]))
		lnRho = append(lnRho, math.Log(density[i]))
	}
	if len(lnR) < minSlopeSamples {
		return math.NaN(), false
	}
	_, slope = stat.LinearRegression(lnR, lnRho, nil, false)
	return slope, true
}
