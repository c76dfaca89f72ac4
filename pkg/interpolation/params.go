// Package interpolation implements adaptive-radius, Gaussian-weighted,
// elevation-corrected spatial interpolation of station observations onto
// arbitrary target points, following the method of Thornton, Running &
// White (1997) as used for daily surface meteorology over complex terrain.
//
// The scheme works on a per-point basis: the truncation radius of a
// Gaussian distance kernel is calibrated so that roughly a target number
// of stations carry weight, a weighted regression of pairwise
// value-differences against pairwise elevation-differences yields a local
// vertical gradient, and the result is the weight-normalized average of
// the station values corrected to the target elevation.
package interpolation

// Params holds the interpolation parameters. A Params value is threaded
// explicitly through every call so that per-call behavior is fully
// reproducible; there is no ambient module-level state.
type Params struct {
	// InitialRadius is the starting truncation radius for the kernel
	// calibration, in the same planar units as the station coordinates
	// (typically meters in a projected CRS).
	InitialRadius float64

	// Shape is the Gaussian shape parameter alpha. Larger values make the
	// weight decay faster inside the truncation radius.
	Shape float64

	// TargetStationCount is the average number of stations that should
	// carry non-zero weight around a target point. The truncation radius
	// is rescaled until the summed kernel weight approaches this count.
	TargetStationCount int

	// RadiusIterations is the fixed number of radius rescaling steps.
	// The calibration is a bounded-cost heuristic loop, not a
	// tolerance-based root finder.
	RadiusIterations int

	// Verbose enables diagnostic output on stdout. It never affects the
	// computed results.
	Verbose bool
}

// DefaultParams returns the parameter values from the reference
// literature: a 140 km initial radius, shape 3.0, 30 effective stations
// and 3 calibration iterations.
func DefaultParams() Params {
	return Params{
		InitialRadius:      140000,
		Shape:              3.0,
		TargetStationCount: 30,
		RadiusIterations:   3,
		Verbose:            false,
	}
}
