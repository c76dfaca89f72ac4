package interpolation

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// pairwiseDiffs enumerates every unordered station pair (i, j) with
// j < i, i ascending outer and j ascending inner, and returns the
// elevation and value differences in that order. The enumeration order is
// fixed because floating-point summation order affects results at the bit
// level; every consumer of these sequences walks pairs the same way.
func pairwiseDiffs(z, v []float64) (elevDiff, valueDiff []float64) {
	n := len(z)
	elevDiff = make([]float64, n*(n-1)/2)
	valueDiff = make([]float64, n*(n-1)/2)
	c := 0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			elevDiff[c] = z[i] - z[j]
			valueDiff[c] = v[i] - v[j]
			c++
		}
	}
	return elevDiff, valueDiff
}

// interpolatePoint computes one interpolated value at p from the full
// station set and the precomputed pairwise difference sequences.
//
// The planar Euclidean distance to each station is computed first;
// elevation is excluded from the distance metric and enters only through
// the regression correction. The truncation radius is then calibrated for
// this point, per-station weights follow from the kernel, and the
// pairwise weight products W[i]*W[j] feed the weighted regression that
// yields the local vertical gradient. The result is the weight-normalized
// average of each station value adjusted to the target elevation.
func interpolatePoint(p Point, st *StationSet, elevDiff, valueDiff []float64, params Params) (float64, error) {
	n := st.Len()
	r := make([]float64, n)
	for i := range r {
		r[i] = math.Hypot(p.X-st.X[i], p.Y-st.Y[i])
	}

	rp := estimateRadius(r, params.InitialRadius, params.Shape,
		params.TargetStationCount, params.RadiusIterations)
	w := gaussianWeights(nil, r, rp, params.Shape)

	// With no weight mass there is nothing to regress or average, so
	// bail out before the quadratic pair loop.
	sumW := floats.Sum(w)
	if sumW == 0 {
		return math.NaN(), ErrZeroWeightMass
	}

	// Weight products follow the same pair enumeration as the
	// precomputed difference sequences.
	wDiff := make([]float64, len(elevDiff))
	c := 0
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			wDiff[c] = w[i] * w[j]
			c++
		}
	}

	intercept, slope := weightedRegression(valueDiff, elevDiff, wDiff)

	var num float64
	for i := 0; i < n; i++ {
		num += w[i] * (st.Value[i] + intercept + slope*(p.Z-st.Z[i]))
	}

	if params.Verbose {
		fmt.Printf("point (%g, %g, %g): stations=%d Rp=%.1f sumW=%.4f intercept=%.4f slope=%.6f\n",
			p.X, p.Y, p.Z, n, rp, sumW, intercept, slope)
	}
	return num / sumW, nil
}

// InterpolatePoint produces one interpolated value at a single target
// point. It builds the pairwise difference sequences for the station set
// and discards them afterwards; use InterpolatePoints when interpolating
// many points against the same stations.
//
// It returns ErrInsufficientStations when fewer than 2 stations are
// given, ErrShapeMismatch when the station arrays disagree in length, and
// ErrZeroWeightMass when no station carries weight at the point.
func InterpolatePoint(p Point, st *StationSet, params Params) (float64, error) {
	if err := st.validate(); err != nil {
		return math.NaN(), err
	}
	if st.Len() < 2 {
		return math.NaN(), fmt.Errorf("%d stations: %w", st.Len(), ErrInsufficientStations)
	}
	elevDiff, valueDiff := pairwiseDiffs(st.Z, st.Value)
	return interpolatePoint(p, st, elevDiff, valueDiff, params)
}

// InterpolatePoints interpolates many target points sharing one station
// set. The pairwise elevation and value difference sequences depend only
// on the stations, so they are computed once and reused for every point;
// results are identical to independent InterpolatePoint calls.
//
// The returned slice has one value per point in input order. A point
// where every station weight collapsed to zero gets NaN, the explicit
// no-data marker; such cells are written deliberately, never produced by
// an unguarded division. The whole call fails with
// ErrInsufficientStations when fewer than 2 stations are given.
func InterpolatePoints(points []Point, st *StationSet, params Params) ([]float64, error) {
	if err := st.validate(); err != nil {
		return nil, err
	}
	if st.Len() < 2 {
		return nil, fmt.Errorf("%d stations: %w", st.Len(), ErrInsufficientStations)
	}

	elevDiff, valueDiff := pairwiseDiffs(st.Z, st.Value)
	out := make([]float64, len(points))
	for i, p := range points {
		v, err := interpolatePoint(p, st, elevDiff, valueDiff, params)
		if err != nil {
			if errors.Is(err, ErrZeroWeightMass) {
				out[i] = math.NaN()
				continue
			}
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
