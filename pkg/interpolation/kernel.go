package interpolation

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// gaussianWeights computes a truncated-Gaussian weight for every distance
// in r and stores it in dst, which is allocated when nil. The kernel is
// maximal (1) at distance zero, decays with the shape parameter alpha and
// is exactly zero at and beyond the truncation radius rp:
//
//	w(r) = (exp(-alpha*(r/rp)^2) - exp(-alpha)) / (1 - exp(-alpha))
//
// The subtraction of exp(-alpha) makes the kernel continuous at rp. The
// caller guarantees rp > 0.
func gaussianWeights(dst, r []float64, rp, alpha float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(r))
	}
	tail := math.Exp(-alpha)
	norm := 1 - tail
	for i, ri := range r {
		if ri >= rp {
			dst[i] = 0
			continue
		}
		u := ri / rp
		dst[i] = (math.Exp(-alpha*u*u) - tail) / norm
	}
	return dst
}

// estimateRadius calibrates the truncation radius so that the summed
// kernel weight over all stations approaches the target count. Starting
// from iniRp, it performs exactly iterations rescaling steps
//
//	rp <- rp * sqrt(target / sumW)
//
// The square-root law follows from the weight mass scaling roughly with
// the enclosed planar area, which grows with rp squared. When no station
// falls inside the current radius (sumW == 0) the radius is left
// unchanged for that step. The loop is a fixed-count heuristic with no
// convergence tolerance; it never fails, but may return a degenerate
// radius when station density around the point is near zero.
func estimateRadius(r []float64, iniRp, alpha float64, target, iterations int) float64 {
	rp := iniRp
	w := make([]float64, len(r))
	for it := 0; it < iterations; it++ {
		gaussianWeights(w, r, rp, alpha)
		sumW := floats.Sum(w)
		if sumW > 0 {
			rp *= math.Sqrt(float64(target) / sumW)
		}
	}
	return rp
}
