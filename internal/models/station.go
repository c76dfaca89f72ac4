package models

import (
	"gonum.org/v1/gonum/mat"

	"meteointerp/pkg/interpolation"
)

// StationTable holds a set of reference stations with their coordinates
// and a time series of observations, as loaded from a station file
type StationTable struct {
	// X, Y are the planar station coordinates in a projected CRS
	X, Y []float64

	// Elevation is the station elevation in meters above sea level
	Elevation []float64

	// Observations is the stations-by-days matrix of observed values.
	// NaN marks a missing cell; a station missing on one day may still
	// report on another.
	Observations *mat.Dense
}

// Len returns the number of stations in the table
func (t *StationTable) Len() int { return len(t.X) }

// Days returns the number of time steps in the observation matrix
func (t *StationTable) Days() int {
	if t.Observations == nil {
		return 0
	}
	_, days := t.Observations.Dims()
	return days
}

// PointList holds the interpolation target points
type PointList struct {
	// X, Y are the planar coordinates, in the same CRS as the stations
	X, Y []float64

	// Elevation is the target elevation in meters above sea level
	Elevation []float64
}

// Len returns the number of target points
func (p *PointList) Len() int { return len(p.X) }

// Points converts the list into the point values consumed by the
// interpolation package
func (p *PointList) Points() []interpolation.Point {
	pts := make([]interpolation.Point, p.Len())
	for i := range pts {
		pts[i] = interpolation.Point{X: p.X[i], Y: p.Y[i], Z: p.Elevation[i]}
	}
	return pts
}
