// Package image provides the pixel buffer used at the edges of the
// frequency engine: turning caller images into intensity planes and
// intensity planes back into displayable pixels.
package image

import (
	"errors"
	"fmt"

	"github.com/becelli/FCT-Photo-Editor/internal/color"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale, one byte per pixel.
	// Intensity grids are stored in this format.
	FormatGray8 Format = iota

	// FormatRGBA8 is non-premultiplied RGBA, four bytes per pixel.
	FormatRGBA8
)

// BytesPerPixel returns the pixel size, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGray8:
		return 1
	case FormatRGBA8:
		return 4
	default:
		return 0
	}
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGBA8:
		return "RGBA8"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ImageBuf is a tightly packed, row-major pixel buffer.
//
// Pixel (x, y) starts at byte (y*width + x) * BytesPerPixel. Rows carry no
// padding, so a Gray8 buffer's Data() is exactly an intensity grid.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	format Format
}

func checkLayout(width, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if format.BytesPerPixel() == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, format)
	}
	return nil
}

// NewImageBuf creates a zeroed buffer with the given dimensions and format.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if err := checkLayout(width, height, format); err != nil {
		return nil, err
	}
	return &ImageBuf{
		data:   make([]byte, width*height*format.BytesPerPixel()),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing data without copying.
// The caller must ensure data remains valid for the lifetime of the ImageBuf.
func FromRaw(data []byte, width, height int, format Format) (*ImageBuf, error) {
	if err := checkLayout(width, height, format); err != nil {
		return nil, err
	}
	size := width * height * format.BytesPerPixel()
	if len(data) < size {
		return nil, ErrDataTooSmall
	}
	return &ImageBuf{data: data[:size], width: width, height: height, format: format}, nil
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Data returns the raw pixel data slice.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// RowBytes returns the pixel data of row y, or nil if y is out of bounds.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	n := b.width * b.format.BytesPerPixel()
	return b.data[y*n : (y+1)*n]
}

// ToGray returns a Gray8 copy of the buffer. RGBA8 pixels are reduced with
// luminance weights and alpha is dropped.
func (b *ImageBuf) ToGray() *ImageBuf {
	gray := &ImageBuf{
		data:   make([]byte, b.width*b.height),
		width:  b.width,
		height: b.height,
		format: FormatGray8,
	}
	if b.format == FormatGray8 {
		copy(gray.data, b.data)
		return gray
	}
	for i := range gray.data {
		p := b.data[i*4:]
		gray.data[i] = color.Luminance(p[0], p[1], p[2])
	}
	return gray
}

// Packed returns one 0xAARRGGBB value per pixel in row-major order.
// Gray8 pixels are replicated across R, G and B with opaque alpha.
func (b *ImageBuf) Packed() []uint32 {
	out := make([]uint32, b.width*b.height)
	if b.format == FormatGray8 {
		for i, v := range b.data {
			out[i] = color.Gray(v)
		}
		return out
	}
	for i := range out {
		p := b.data[i*4:]
		out[i] = color.Pack(color.ColorU8{R: p[0], G: p[1], B: p[2], A: p[3]})
	}
	return out
}
