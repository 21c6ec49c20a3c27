package kayn

import (
	"fmt"
	stdimage "image"

	"github.com/samber/lo"

	"github.com/becelli/FCT-Photo-Editor/internal/dct"
	"github.com/becelli/FCT-Photo-Editor/internal/image"
)

// IntensityGrid is a single-channel 8-bit image. Pixel (x, y) lives at
// Pix[y*Width+x].
type IntensityGrid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewIntensityGrid returns a zeroed grid of the given size.
func NewIntensityGrid(width, height int) (IntensityGrid, error) {
	if width <= 0 || height <= 0 {
		return IntensityGrid{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return IntensityGrid{Width: width, Height: height, Pix: make([]uint8, width*height)}, nil
}

// Validate reports whether the grid dimensions and pixel count agree.
func (g IntensityGrid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 || len(g.Pix) != g.Width*g.Height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimensions, len(g.Pix), g.Width, g.Height)
	}
	return nil
}

// At returns the intensity at (x, y).
func (g IntensityGrid) At(x, y int) (uint8, error) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return g.Pix[y*g.Width+x], nil
}

// Raster replicates every intensity into the R, G and B channels of an
// opaque packed pixel, in row-major order.
func (g IntensityGrid) Raster() (Raster, error) {
	buf, err := g.buffer()
	if err != nil {
		return nil, err
	}
	return Raster(buf.Packed()), nil
}

// Image returns the grid as a standard library grayscale image.
func (g IntensityGrid) Image() (*stdimage.Gray, error) {
	buf, err := g.buffer()
	if err != nil {
		return nil, err
	}
	return buf.ToStdImage().(*stdimage.Gray), nil
}

// buffer wraps Pix without copying.
func (g IntensityGrid) buffer() (*image.ImageBuf, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return image.FromRaw(g.Pix, g.Width, g.Height, image.FormatGray8)
}

// CoefficientGrid holds the DCT coefficients of a Width×Height image.
// Coefficient (u, v) lives at Coeff[u*Height+v]: u is the horizontal
// frequency and the outer index.
type CoefficientGrid struct {
	Width  int
	Height int
	Coeff  []float32
}

// Validate reports whether the grid dimensions and coefficient count agree.
func (c CoefficientGrid) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if len(c.Coeff) != c.Width*c.Height {
		return fmt.Errorf("%w: %d coefficients for %dx%d", ErrIndexMismatch, len(c.Coeff), c.Width, c.Height)
	}
	return nil
}

// At returns coefficient (u, v).
func (c CoefficientGrid) At(u, v int) (float32, error) {
	if u < 0 || u >= c.Width || v < 0 || v >= c.Height {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, u, v, c.Width, c.Height)
	}
	return c.Coeff[u*c.Height+v], nil
}

// Clone returns a deep copy of the grid.
func (c CoefficientGrid) Clone() CoefficientGrid {
	return CoefficientGrid{Width: c.Width, Height: c.Height, Coeff: append([]float32(nil), c.Coeff...)}
}

// MaxRadius is the distance from the DC term to the farthest coefficient.
// Highpass at this radius or beyond removes everything.
func (c CoefficientGrid) MaxRadius() float64 {
	return dct.MaxRadius(c.Width, c.Height)
}

// InjectSpike returns a copy of the grid with coefficient (u, v) set to a
// quarter of the largest coefficient. Inverting the result overlays a
// cosine pattern of that frequency on the image. The receiver is not
// modified.
func (c CoefficientGrid) InjectSpike(u, v int) (CoefficientGrid, error) {
	if err := c.Validate(); err != nil {
		return CoefficientGrid{}, err
	}
	if _, err := c.At(u, v); err != nil {
		return CoefficientGrid{}, err
	}

	out := c.Clone()
	out.Coeff[u*c.Height+v] = lo.Max(c.Coeff) / 4
	return out, nil
}

// PreviewImage renders a raster derived from this grid so that
// coefficient (u, v) appears at pixel (u, v).
func (c CoefficientGrid) PreviewImage(r Raster) (*stdimage.RGBA, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(r) != len(c.Coeff) {
		return nil, fmt.Errorf("%w: raster of %d pixels for %dx%d", ErrIndexMismatch, len(r), c.Width, c.Height)
	}

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, c.Width, c.Height))
	for u := range c.Width {
		for v := range c.Height {
			img.SetRGBA(u, v, r.rgbaAt(u*c.Height+v))
		}
	}
	return img, nil
}
