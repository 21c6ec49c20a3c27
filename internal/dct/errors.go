package dct

import "errors"

// Errors returned before any work is dispatched.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive
	// or an intensity plane does not hold width*height pixels.
	ErrInvalidDimensions = errors.New("dct: invalid dimensions")

	// ErrIndexMismatch is returned when a coefficient plane does not hold
	// width*height coefficients.
	ErrIndexMismatch = errors.New("dct: coefficient count does not match dimensions")

	// ErrInvalidRadius is returned for a negative or NaN mask radius.
	ErrInvalidRadius = errors.New("dct: invalid mask radius")

	// ErrInvalidPolarity is returned for an unknown mask polarity.
	ErrInvalidPolarity = errors.New("dct: invalid mask polarity")
)

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	return nil
}
