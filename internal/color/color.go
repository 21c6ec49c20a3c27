// Package color provides the packed pixel encoding shared by display rasters.
//
// A packed pixel is a uint32 laid out as 0xAARRGGBB, the same layout Qt's
// QRgb and most toolkits accept directly.
package color

import "math"

// Opaque is the alpha value of every pixel produced by this library.
const Opaque uint8 = 0xFF

// ColorU8 represents a color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B, A uint8
}

// Pack encodes c as 0xAARRGGBB.
func Pack(c ColorU8) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 0xAARRGGBB pixel.
func Unpack(p uint32) ColorU8 {
	return ColorU8{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Gray packs v replicated across R, G and B with opaque alpha.
func Gray(v uint8) uint32 {
	return Pack(ColorU8{R: v, G: v, B: v, A: Opaque})
}

// Luminance returns the 8-bit luma of an RGB triple using
// 0.299*R + 0.587*G + 0.114*B in integer arithmetic.
func Luminance(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}

// Quantize rounds v to the nearest integer (halves away from zero) and clamps
// it into [0,255]. NaN maps to 0.
func Quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
