package corner

import "errors"

// Sentinel errors for corner package. Domain errors from the Gaussian
// arithmetic are the ones declared in package gauss and are wrapped, so
// errors.Is works for both sets.
var (
	// ErrZeroVariance is returned when a parameter has zero standard
	// deviation: its display window collapses and its density is undefined.
	ErrZeroVariance = errors.New("corner: zero variance")

	// ErrInvalidSize is returned when a figure size is not positive.
	ErrInvalidSize = errors.New("corner: invalid figure size")

	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("corner: invalid option")
)
