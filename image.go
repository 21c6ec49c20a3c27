package kayn

import (
	"fmt"
	stdimage "image"

	"github.com/becelli/FCT-Photo-Editor/internal/image"
)

// IntensityFromImage extracts the luminance of img into an IntensityGrid.
// Grayscale images are copied as is; color images use
// (299R + 587G + 114B) / 1000 per pixel.
func IntensityFromImage(img stdimage.Image) (IntensityGrid, error) {
	buf, err := image.FromStdImage(img)
	if err != nil {
		return IntensityGrid{}, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}

	gray := buf.ToGray()
	return IntensityGrid{Width: gray.Width(), Height: gray.Height(), Pix: gray.Data()}, nil
}

// ResizeNearest rescales img to width×height with nearest-neighbour
// sampling. Grayscale input yields *image.Gray, anything else
// *image.NRGBA.
func ResizeNearest(img stdimage.Image, width, height int) (stdimage.Image, error) {
	buf, err := image.FromStdImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDimensions, err)
	}
	scaled, err := buf.ResizeNearest(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: resize to %dx%d: %w", ErrInvalidDimensions, width, height, err)
	}
	return scaled.ToStdImage(), nil
}

// Resize rescales the grid to width×height with nearest-neighbour
// sampling.
func (g IntensityGrid) Resize(width, height int) (IntensityGrid, error) {
	buf, err := g.buffer()
	if err != nil {
		return IntensityGrid{}, err
	}
	scaled, err := buf.ResizeNearest(width, height)
	if err != nil {
		return IntensityGrid{}, fmt.Errorf("%w: resize to %dx%d: %w", ErrInvalidDimensions, width, height, err)
	}
	return IntensityGrid{Width: width, Height: height, Pix: scaled.Data()}, nil
}
