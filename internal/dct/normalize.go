package dct

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"

	"github.com/becelli/FCT-Photo-Editor/internal/color"
)

// FlatValue is the gray level emitted for every pixel when the input has no
// range to stretch: all finite values are equal, or none is finite.
const FlatValue uint8 = 0

// MagnitudeCeiling is the clip applied to coefficient magnitudes before
// normalizing a preview.
const MagnitudeCeiling = 255.0

// Normalize maps values onto packed gray pixels with
// round(255 * (v - min) / (max - min)). The minimum becomes 0 and the
// maximum 255. When min == max every pixel is FlatValue.
//
// min and max are taken over the finite values only. +Inf then maps to 255,
// -Inf and NaN to 0.
func Normalize(values []float32) []uint32 {
	out := make([]uint32, len(values))
	if len(values) == 0 {
		return out
	}

	f := make([]float64, len(values))
	for i, v := range values {
		f[i] = float64(v)
	}
	finite := lo.Filter(f, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})

	var low, high float64
	if len(finite) > 0 {
		low, high = floats.Min(finite), floats.Max(finite)
	}
	if low == high {
		flat := color.Gray(FlatValue)
		for i := range out {
			out[i] = flat
		}
		return out
	}

	span := high - low
	for i, v := range f {
		out[i] = color.Gray(color.Quantize(255 * (v - low) / span))
	}
	return out
}

// NormalizeMagnitudes normalizes |v| clipped to MagnitudeCeiling. This is the
// preview used for coefficient planes, where a huge DC term would otherwise
// flatten every other frequency to black.
func NormalizeMagnitudes(values []float32) []uint32 {
	m := make([]float32, len(values))
	for i, v := range values {
		m[i] = float32(math.Min(math.Abs(float64(v)), MagnitudeCeiling))
	}
	return Normalize(m)
}

// IsFlat reports whether Normalize would take the FlatValue fallback.
func IsFlat(values []float32) bool {
	var first float32
	seen := false
	for _, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			continue
		}
		if !seen {
			first, seen = v, true
			continue
		}
		if v != first {
			return false
		}
	}
	return true
}
