package kayn

import (
	"errors"

	"github.com/becelli/FCT-Photo-Editor/internal/dct"
	"github.com/becelli/FCT-Photo-Editor/internal/parallel"
)

// Errors returned by kayn. All input checks run before any work is
// dispatched, so a failed call never produces partial output.
var (
	// ErrInvalidDimensions is returned when a grid has a non-positive width
	// or height, or its pixel count is not Width*Height.
	ErrInvalidDimensions = dct.ErrInvalidDimensions

	// ErrIndexMismatch is returned when a coefficient grid does not hold
	// Width*Height coefficients.
	ErrIndexMismatch = dct.ErrIndexMismatch

	// ErrInvalidRadius is returned for a negative or NaN mask radius.
	ErrInvalidRadius = dct.ErrInvalidRadius

	// ErrInvalidPolarity is returned for a polarity other than Lowpass or
	// Highpass.
	ErrInvalidPolarity = dct.ErrInvalidPolarity

	// ErrOutOfBounds is returned when coordinates fall outside a grid.
	ErrOutOfBounds = errors.New("kayn: coordinates out of bounds")

	// ErrWorkerFailed is returned when a transform worker panics.
	ErrWorkerFailed = parallel.ErrWorkerPanic
)
