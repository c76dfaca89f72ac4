package interpolation

import "fmt"

// StationSet holds the reference stations for one interpolation call as
// index-aligned parallel slices. A station's identity is its index; there
// is no persistent identity across calls.
type StationSet struct {
	// X, Y are the planar station coordinates. All planar coordinates
	// and the truncation radius share one unit system chosen by the
	// caller; elevation is never mixed into planar distances.
	X, Y []float64

	// Z is the station elevation in meters above sea level.
	Z []float64

	// Value is the observed variable at each station, e.g. temperature
	// in degrees Celsius.
	Value []float64
}

// Len returns the number of stations in the set.
func (s *StationSet) Len() int { return len(s.Value) }

// validate checks that all four parallel slices agree in length.
func (s *StationSet) validate() error {
	n := len(s.X)
	if len(s.Y) != n || len(s.Z) != n || len(s.Value) != n {
		return fmt.Errorf("station arrays disagree: x=%d y=%d z=%d value=%d: %w",
			len(s.X), len(s.Y), len(s.Z), len(s.Value), ErrShapeMismatch)
	}
	return nil
}

// Point is an interpolation target: planar coordinates plus elevation,
// analogous to a station but without an observed value.
type Point struct {
	X, Y float64 // planar coordinates
	Z    float64 // elevation in meters above sea level
}
