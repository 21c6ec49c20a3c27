package kayn

import (
	"fmt"
	"math"
	"time"

	"github.com/becelli/FCT-Photo-Editor/internal/dct"
)

// Polarity selects which side of a FrequencyMask radius survives.
type Polarity = dct.Polarity

const (
	// Lowpass keeps coefficients within the radius: sqrt(u²+v²) <= R.
	Lowpass = dct.Lowpass

	// Highpass keeps coefficients beyond the radius: sqrt(u²+v²) > R.
	Highpass = dct.Highpass
)

// FrequencyMask is a circular band mask centred on the DC coefficient.
// Radius is in coefficient index units and must be non-negative; +Inf is
// allowed.
type FrequencyMask struct {
	Radius   float64
	Polarity Polarity
}

// String returns a short description such as "Lowpass(12)".
func (m FrequencyMask) String() string {
	return fmt.Sprintf("%s(%g)", m.Polarity, m.Radius)
}

// Validate reports whether the radius and polarity are usable.
func (m FrequencyMask) Validate() error {
	if math.IsNaN(m.Radius) || m.Radius < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, m.Radius)
	}
	if m.Polarity != Lowpass && m.Polarity != Highpass {
		return fmt.Errorf("%w: %d", ErrInvalidPolarity, m.Polarity)
	}
	return nil
}

// ForwardTransform computes the 2D DCT-II of g. It returns the coefficient
// grid together with a magnitude preview raster in coefficient order.
func ForwardTransform(g IntensityGrid, opts ...Option) (Raster, CoefficientGrid, error) {
	o := newOptions(opts)
	if err := g.Validate(); err != nil {
		return nil, CoefficientGrid{}, err
	}

	coeff, err := dct.New(o.workers, o.logger).Forward(g.Pix, g.Width, g.Height)
	if err != nil {
		return nil, CoefficientGrid{}, fmt.Errorf("kayn: forward transform: %w", err)
	}

	c := CoefficientGrid{Width: g.Width, Height: g.Height, Coeff: coeff}
	return NormalizeMagnitudes(coeff), c, nil
}

// InverseTransform reconstructs an intensity grid from c with the 2D
// DCT-III. Each pixel is rounded to the nearest integer and clamped into
// [0,255].
func InverseTransform(c CoefficientGrid, opts ...Option) (IntensityGrid, error) {
	o := newOptions(opts)
	if err := c.Validate(); err != nil {
		return IntensityGrid{}, err
	}

	pix, err := dct.New(o.workers, o.logger).Inverse(c.Coeff, c.Width, c.Height)
	if err != nil {
		return IntensityGrid{}, fmt.Errorf("kayn: inverse transform: %w", err)
	}
	return IntensityGrid{Width: c.Width, Height: c.Height, Pix: pix}, nil
}

// ApplyMask zeroes every coefficient of c outside the band selected by m
// and returns the masked grid with its magnitude preview. c is not
// modified.
func ApplyMask(c CoefficientGrid, m FrequencyMask) (Raster, CoefficientGrid, error) {
	if err := c.Validate(); err != nil {
		return nil, CoefficientGrid{}, err
	}

	masked, err := dct.Mask(c.Coeff, c.Width, c.Height, m.Radius, m.Polarity)
	if err != nil {
		return nil, CoefficientGrid{}, err
	}

	out := CoefficientGrid{Width: c.Width, Height: c.Height, Coeff: masked}
	return NormalizeMagnitudes(masked), out, nil
}

// ApplyLowpass is ApplyMask with a lowpass mask of the given radius.
func ApplyLowpass(c CoefficientGrid, radius float64) (Raster, CoefficientGrid, error) {
	return ApplyMask(c, FrequencyMask{Radius: radius, Polarity: Lowpass})
}

// ApplyHighpass is ApplyMask with a highpass mask of the given radius.
func ApplyHighpass(c CoefficientGrid, radius float64) (Raster, CoefficientGrid, error) {
	return ApplyMask(c, FrequencyMask{Radius: radius, Polarity: Highpass})
}

// FilterImage runs forward transform, mask and inverse transform on g.
// No preview rasters are built along the way.
func FilterImage(g IntensityGrid, m FrequencyMask, opts ...Option) (IntensityGrid, error) {
	o := newOptions(opts)
	if err := m.Validate(); err != nil {
		return IntensityGrid{}, err
	}
	if err := g.Validate(); err != nil {
		return IntensityGrid{}, err
	}
	start := time.Now()
	engine := dct.New(o.workers, o.logger)

	coeff, err := engine.Forward(g.Pix, g.Width, g.Height)
	if err != nil {
		return IntensityGrid{}, fmt.Errorf("kayn: forward transform: %w", err)
	}
	masked, err := dct.Mask(coeff, g.Width, g.Height, m.Radius, m.Polarity)
	if err != nil {
		return IntensityGrid{}, err
	}
	pix, err := engine.Inverse(masked, g.Width, g.Height)
	if err != nil {
		return IntensityGrid{}, fmt.Errorf("kayn: inverse transform: %w", err)
	}

	o.logger.Debug("kayn: filter",
		"width", g.Width, "height", g.Height,
		"mask", m.String(), "elapsed", time.Since(start))
	return IntensityGrid{Width: g.Width, Height: g.Height, Pix: pix}, nil
}
