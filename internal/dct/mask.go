package dct

import (
	"fmt"
	"math"
)

// Polarity selects which side of the mask radius is kept.
type Polarity uint8

const (
	// Lowpass keeps coefficients with sqrt(u²+v²) <= radius.
	Lowpass Polarity = iota

	// Highpass keeps coefficients with sqrt(u²+v²) > radius.
	Highpass
)

// String returns a string representation of the polarity.
func (p Polarity) String() string {
	switch p {
	case Lowpass:
		return "Lowpass"
	case Highpass:
		return "Highpass"
	default:
		return "Unknown"
	}
}

// Mask returns a copy of coeff with every coefficient on the discarded side
// of the circle of the given radius set to exactly zero. Kept coefficients
// are copied bit for bit, so Mask(c, r, Lowpass) + Mask(c, r, Highpass) == c.
func Mask(coeff []float32, width, height int, radius float64, p Polarity) ([]float32, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(coeff) != width*height {
		return nil, fmt.Errorf("%w: %d coefficients for %dx%d", ErrIndexMismatch, len(coeff), width, height)
	}
	if math.IsNaN(radius) || radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRadius, radius)
	}
	if p != Lowpass && p != Highpass {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPolarity, p)
	}

	keepInside := p == Lowpass
	out := make([]float32, len(coeff))
	for u := range width {
		for v := range height {
			d := math.Sqrt(float64(u*u + v*v))
			if (d <= radius) == keepInside {
				i := u*height + v
				out[i] = coeff[i]
			}
		}
	}
	return out, nil
}

// MaxRadius returns the largest frequency distance present in a
// width×height coefficient plane. A highpass mask with at least this radius
// removes everything.
func MaxRadius(width, height int) float64 {
	return math.Sqrt(float64((width-1)*(width-1) + (height-1)*(height-1)))
}
