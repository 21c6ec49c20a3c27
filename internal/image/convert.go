package image

import (
	"image"

	"golang.org/x/image/draw"
)

// FromStdImage creates an ImageBuf from a standard library image.Image.
// *image.Gray input becomes Gray8; everything else becomes RGBA8
// (non-premultiplied).
func FromStdImage(img image.Image) (*ImageBuf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		buf, err := NewImageBuf(width, height, FormatGray8)
		if err != nil {
			return nil, err
		}
		for y := range height {
			srcStart := gray.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), gray.Pix[srcStart:srcStart+width])
		}
		return buf, nil
	}

	buf, err := NewImageBuf(width, height, FormatRGBA8)
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		// Let draw handle premultiplied and paletted sources.
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
		bounds = nrgba.Bounds()
	}

	for y := range height {
		srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
	}
	return buf, nil
}

// ToStdImage converts the ImageBuf to a standard library image.Image.
// Returns *image.Gray for Gray8 and *image.NRGBA for RGBA8.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		copy(gray.Pix, b.data)
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	copy(nrgba.Pix, b.data)
	return nrgba
}

// ResizeNearest returns a nearest-neighbour rescaled copy of the buffer.
// Gray8 stays Gray8; color formats come back as RGBA8.
func (b *ImageBuf) ResizeNearest(width, height int) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	src := b.ToStdImage()
	rect := image.Rect(0, 0, width, height)

	var dst draw.Image
	if b.format == FormatGray8 {
		dst = image.NewGray(rect)
	} else {
		dst = image.NewNRGBA(rect)
	}
	draw.NearestNeighbor.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)

	return FromStdImage(dst)
}
