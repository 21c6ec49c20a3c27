package dct

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func randomPlane(width, height int, rng *rand.Rand) []uint8 {
	pix := make([]uint8, width*height)
	for i := range pix {
		pix[i] = uint8(rng.Intn(256))
	}
	return pix
}

// directForward is the O(W²H²) textbook summation, kept as the reference the
// separable implementation must agree with.
func directForward(pix []uint8, width, height int) []float64 {
	out := make([]float64, 0, width*height)
	for u := range width {
		for v := range height {
			sum := 0.0
			for x := range width {
				for y := range height {
					sum += float64(pix[y*width+x]) *
						math.Cos(float64(2*x+1)*float64(u)*math.Pi/float64(2*width)) *
						math.Cos(float64(2*y+1)*float64(v)*math.Pi/float64(2*height))
				}
			}
			out = append(out, Scale(u, width)*Scale(v, height)*sum)
		}
	}
	return out
}

func maxAbsDiff(a, b []uint8) int {
	worst := 0
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		worst = max(worst, d)
	}
	return worst
}

// =============================================================================
// Basis Tests
// =============================================================================

func TestBasis_Orthonormal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 17} {
		b := Basis(n)
		var prod mat.Dense
		prod.Mul(b, b.T())

		identity := mat.NewDiagDense(n, nil)
		for i := range n {
			identity.SetDiag(i, 1)
		}
		assert.Truef(t, mat.EqualApprox(&prod, identity, 1e-12), "Basis(%d) * Basis(%d)^T is not identity", n, n)
	}
}

func TestScale(t *testing.T) {
	assert.InDelta(t, 1/math.Sqrt2, Scale(0, 2), 1e-15)
	assert.InDelta(t, 1.0, Scale(1, 2), 1e-15)
	assert.InDelta(t, 0.5, Scale(0, 4), 1e-15)
	assert.InDelta(t, math.Sqrt(0.5), Scale(3, 4), 1e-15)
}

func TestCachedBasis(t *testing.T) {
	b := cachedBasis(11, false)
	assert.Same(t, b, cachedBasis(11, false), "second lookup should hit the cache")
	assert.True(t, mat.Equal(b, Basis(11)))

	bt := cachedBasis(11, true)
	assert.NotSame(t, b, bt)
	assert.True(t, mat.Equal(bt, Basis(11).T()))
}

// =============================================================================
// Forward / Inverse Tests
// =============================================================================

func TestForward_ConstantTwoByTwo(t *testing.T) {
	e := New(4, nil)
	pix := []uint8{100, 100, 100, 100}

	coeff, err := e.Forward(pix, 2, 2)
	require.NoError(t, err)
	require.Len(t, coeff, 4)

	assert.InDelta(t, 200.0, coeff[0], 1e-4)
	for i := 1; i < 4; i++ {
		assert.InDeltaf(t, 0.0, coeff[i], 1e-4, "coefficient %d of a constant field", i)
	}

	back, err := e.Inverse(coeff, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, pix, back)
}

func TestForward_MatchesDirectSummation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sizes := [][2]int{{1, 1}, {3, 5}, {5, 3}, {8, 8}, {7, 2}}

	for _, s := range sizes {
		w, h := s[0], s[1]
		pix := randomPlane(w, h, rng)

		got, err := New(3, nil).Forward(pix, w, h)
		require.NoError(t, err)

		want := directForward(pix, w, h)
		gotF64 := make([]float64, len(got))
		for i, v := range got {
			gotF64[i] = float64(v)
		}
		if diff := cmp.Diff(want, gotF64, cmpopts.EquateApprox(1e-5, 1e-3)); diff != "" {
			t.Errorf("Forward(%dx%d) mismatch vs direct summation (-want +got):\n%s", w, h, diff)
		}
	}
}

func TestForward_HorizontalFrequencyIsOuterIndex(t *testing.T) {
	// Intensity varies with x only: all energy sits at v == 0.
	const w, h = 6, 4
	pix := make([]uint8, w*h)
	for y := range h {
		for x := range w {
			pix[y*w+x] = uint8(40 * x)
		}
	}

	coeff, err := New(2, nil).Forward(pix, w, h)
	require.NoError(t, err)

	for u := range w {
		for v := 1; v < h; v++ {
			assert.InDeltaf(t, 0.0, coeff[u*h+v], 1e-3, "coeff(u=%d, v=%d)", u, v)
		}
	}
	assert.Greater(t, math.Abs(float64(coeff[1*h+0])), 10.0, "coeff(1,0) should carry the horizontal ramp")
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	sizes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {8, 8}, {13, 9}, {16, 5}, {32, 32}}

	for _, s := range sizes {
		w, h := s[0], s[1]
		pix := randomPlane(w, h, rng)
		e := New(0, nil)

		coeff, err := e.Forward(pix, w, h)
		require.NoError(t, err)
		back, err := e.Inverse(coeff, w, h)
		require.NoError(t, err)

		assert.LessOrEqualf(t, maxAbsDiff(pix, back), 1, "round trip %dx%d", w, h)
	}
}

func TestRoundTrip_SinglePixelLocation(t *testing.T) {
	// Non-square with a lone bright pixel catches any transposition.
	const w, h = 5, 3
	pix := make([]uint8, w*h)
	pix[1*w+3] = 255

	e := New(4, nil)
	coeff, err := e.Forward(pix, w, h)
	require.NoError(t, err)
	back, err := e.Inverse(coeff, w, h)
	require.NoError(t, err)

	assert.Equal(t, pix, back)
}

func TestPartitionInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 19, 11
	pix := randomPlane(w, h, rng)

	refCoeff, err := New(1, nil).Forward(pix, w, h)
	require.NoError(t, err)
	refPix, err := New(1, nil).Inverse(refCoeff, w, h)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8, 32} {
		e := New(workers, nil)
		coeff, err := e.Forward(pix, w, h)
		require.NoError(t, err)
		for i := range refCoeff {
			require.Equalf(t, math.Float32bits(refCoeff[i]), math.Float32bits(coeff[i]),
				"forward coefficient %d differs with %d workers", i, workers)
		}

		back, err := e.Inverse(refCoeff, w, h)
		require.NoError(t, err)
		require.Equalf(t, refPix, back, "inverse differs with %d workers", workers)
	}
}

func TestMoreWorkersThanColumns(t *testing.T) {
	pix := []uint8{10, 20, 30, 40, 50, 60}
	e := New(8, nil)

	coeff, err := e.Forward(pix, 2, 3)
	require.NoError(t, err)
	require.Len(t, coeff, 6)

	back, err := e.Inverse(coeff, 2, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, maxAbsDiff(pix, back), 1)
}

func TestInverse_Clamps(t *testing.T) {
	e := New(2, nil)

	bright := []float32{4 * 1000, 0, 0, 0}
	got, err := e.Inverse(bright, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint8{255, 255, 255, 255}, got)

	dark := []float32{-500, 0, 0, 0}
	got, err = e.Inverse(dark, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, got)
}

func TestEngine_InvalidInput(t *testing.T) {
	e := New(4, nil)

	_, err := e.Forward([]uint8{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = e.Forward(nil, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = e.Forward([]uint8{1}, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = e.Inverse(make([]float32, 5), 2, 2)
	assert.ErrorIs(t, err, ErrIndexMismatch)
	_, err = e.Inverse(make([]float32, 4), 0, 4)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestEngine_LogsBasisCacheStats(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(2, log)

	pix := randomPlane(6, 5, rand.New(rand.NewSource(3)))
	_, err := e.Forward(pix, 6, 5)
	require.NoError(t, err)
	before := bases.Stats().Hits

	coeff, err := e.Forward(pix, 6, 5)
	require.NoError(t, err)
	assert.Greater(t, bases.Stats().Hits, before, "repeat size should hit the basis cache")

	_, err = e.Inverse(coeff, 6, 5)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "dct forward"))
	assert.Equal(t, 1, strings.Count(out, "dct inverse"))
	assert.Contains(t, out, "basis_hits=")
	assert.Contains(t, out, "basis_misses=")
}

func TestEngine_Workers(t *testing.T) {
	assert.Equal(t, 6, New(6, nil).Workers())
	assert.Positive(t, New(0, nil).Workers())
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkForward64(b *testing.B) {
	pix := randomPlane(64, 64, rand.New(rand.NewSource(1)))
	e := New(0, nil)

	b.ResetTimer()
	for range b.N {
		_, _ = e.Forward(pix, 64, 64)
	}
}

func BenchmarkInverse64(b *testing.B) {
	pix := randomPlane(64, 64, rand.New(rand.NewSource(1)))
	e := New(0, nil)
	coeff, _ := e.Forward(pix, 64, 64)

	b.ResetTimer()
	for range b.N {
		_, _ = e.Inverse(coeff, 64, 64)
	}
}
