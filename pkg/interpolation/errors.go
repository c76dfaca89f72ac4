package interpolation

import "errors"

var (
	// ErrInsufficientStations is returned when fewer than 2 valid
	// stations are available for an interpolation: the pairwise
	// difference regression is undefined below that.
	ErrInsufficientStations = errors.New("interpolation: fewer than 2 valid stations")

	// ErrZeroWeightMass is returned when every station weight for a
	// target point collapses to zero, typically because the radius
	// calibration degenerated under extreme station sparsity.
	ErrZeroWeightMass = errors.New("interpolation: all station weights are zero")

	// ErrShapeMismatch is returned when input arrays disagree in length
	// before any computation takes place.
	ErrShapeMismatch = errors.New("interpolation: input length mismatch")
)
