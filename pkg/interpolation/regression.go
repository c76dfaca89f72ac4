package interpolation

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// weightedRegression fits valueDiff = intercept + slope*elevDiff by
// weighted least squares. The three slices are index-aligned over the
// same pair enumeration and must have equal length.
//
// Two degenerate inputs have well-defined fallbacks: if the total weight
// is zero the fit is (0, 0), and if the weighted variance of elevation
// differences is zero (all contributing stations at the same elevation)
// the slope is 0 and the intercept is the weighted mean value difference.
// Both fallbacks amount to dropping the elevation correction rather than
// dividing by zero.
func weightedRegression(valueDiff, elevDiff, weights []float64) (intercept, slope float64) {
	if floats.Sum(weights) == 0 {
		return 0, 0
	}
	meanZ := stat.Mean(elevDiff, weights)
	meanV := stat.Mean(valueDiff, weights)

	var cov, varZ float64
	for i, w := range weights {
		dz := elevDiff[i] - meanZ
		cov += w * dz * (valueDiff[i] - meanV)
		varZ += w * dz * dz
	}
	if varZ == 0 {
		return meanV, 0
	}
	slope = cov / varZ
	intercept = meanV - slope*meanZ
	return intercept, slope
}
