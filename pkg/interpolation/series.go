package interpolation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// InterpolateSeries interpolates a time series of station observations
// onto the target points. obs is a stations-by-days matrix whose rows are
// index-aligned with the coordinate slices x, y and z; NaN marks a
// missing cell. The result is a points-by-days matrix.
//
// Each day is handled independently: stations whose observation or any
// coordinate is missing for that day are dropped, the survivors are
// compacted into freshly allocated per-day arrays and interpolated as one
// batch, and the per-point values fill that day's output column. Station
// membership is therefore recomputed per day; a station missing on one
// day can still contribute on the next, and no output cell depends on any
// other day's inputs.
//
// Failures are isolated per day: a day with fewer than 2 valid stations
// yields a NaN column and an ErrInsufficientStations entry in the
// returned error slice (indexed by day, nil for days that succeeded)
// while the remaining days are still computed. Only an input shape
// mismatch fails the whole call, before any computation.
//
// An empty point list is valid: the returned matrix is nil (a Dense
// cannot have a zero dimension) and the per-day error slice is still
// populated, so day-level failures remain visible.
func InterpolateSeries(points []Point, x, y, z []float64, obs *mat.Dense, params Params) (*mat.Dense, []error, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, nil, fmt.Errorf("station coordinate arrays disagree: x=%d y=%d z=%d: %w",
			len(x), len(y), len(z), ErrShapeMismatch)
	}
	rows, days := obs.Dims()
	if rows != n {
		return nil, nil, fmt.Errorf("observation matrix has %d rows for %d stations: %w",
			rows, n, ErrShapeMismatch)
	}

	var out *mat.Dense
	if len(points) > 0 {
		out = mat.NewDense(len(points), days, nil)
	}
	dayErrs := make([]error, days)

	for d := 0; d < days; d++ {
		// Compact the non-missing stations into per-day arrays. These
		// are freshly allocated rather than aliased into the full
		// matrix since membership varies day to day.
		day := &StationSet{
			X:     make([]float64, 0, n),
			Y:     make([]float64, 0, n),
			Z:     make([]float64, 0, n),
			Value: make([]float64, 0, n),
		}
		for i := 0; i < n; i++ {
			v := obs.At(i, d)
			if math.IsNaN(v) || math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsNaN(z[i]) {
				continue
			}
			day.X = append(day.X, x[i])
			day.Y = append(day.Y, y[i])
			day.Z = append(day.Z, z[i])
			day.Value = append(day.Value, v)
		}
		if params.Verbose {
			fmt.Printf("day %d: %d of %d stations used\n", d, day.Len(), n)
		}

		vals, err := InterpolatePoints(points, day, params)
		if err != nil {
			dayErrs[d] = fmt.Errorf("day %d: %w", d, err)
			for p := range points {
				out.Set(p, d, math.NaN())
			}
			continue
		}
		for p, v := range vals {
			out.Set(p, d, v)
		}
	}
	return out, dayErrs, nil
}
