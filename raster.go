package kayn

import (
	"context"
	"fmt"
	stdimage "image"
	stdcolor "image/color"
	"log/slog"

	"github.com/becelli/FCT-Photo-Editor/internal/color"
	"github.com/becelli/FCT-Photo-Editor/internal/dct"
)

// Raster is a sequence of packed 0xAARRGGBB pixels. Rasters produced by
// kayn are opaque gray: R, G and B are equal and alpha is 0xFF.
type Raster []uint32

// Image lays the raster out row-major as a width×height image.
func (r Raster) Image(width, height int) (*stdimage.RGBA, error) {
	if width <= 0 || height <= 0 || len(r) != width*height {
		return nil, fmt.Errorf("%w: raster of %d pixels for %dx%d", ErrInvalidDimensions, len(r), width, height)
	}

	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for i := range r {
		img.SetRGBA(i%width, i/width, r.rgbaAt(i))
	}
	return img, nil
}

func (r Raster) rgbaAt(i int) stdcolor.RGBA {
	c := color.Unpack(r[i])
	return stdcolor.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Normalize stretches values linearly so the minimum maps to 0 and the
// maximum to 255, with round(255*(v-min)/(max-min)). min and max ignore
// non-finite values; +Inf becomes 255, -Inf and NaN become 0. When there is
// no range to stretch every pixel is 0.
func Normalize(values []float32) Raster {
	if log := Logger(); len(values) > 0 && log.Enabled(context.Background(), slog.LevelDebug) && dct.IsFlat(values) {
		log.Debug("kayn: normalize flat input", "len", len(values))
	}
	return Raster(dct.Normalize(values))
}

// NormalizeMagnitudes normalizes |v| clipped to 255. This is the preview
// used for coefficient grids.
func NormalizeMagnitudes(values []float32) Raster {
	return Raster(dct.NormalizeMagnitudes(values))
}
