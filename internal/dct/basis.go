package dct

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/becelli/FCT-Photo-Editor/internal/cache"
)

// basisCacheSize bounds how many distinct axis lengths keep their bases.
const basisCacheSize = 32

type basisKey struct {
	n          int
	transposed bool
}

// bases holds read-only basis matrices shared by every Engine.
var bases = cache.New[basisKey, *mat.Dense](basisCacheSize)

// Scale returns the orthonormal weight C(k, n) of frequency k on an axis of
// length n.
func Scale(k, n int) float64 {
	if k == 0 {
		return math.Sqrt(1 / float64(n))
	}
	return math.Sqrt(2 / float64(n))
}

// Basis returns the n×n orthonormal DCT-II matrix. Row k, column i holds
// C(k,n) * cos((2i+1)*k*pi / (2n)), so row k is the k-th cosine basis vector
// sampled at every position. The matrix is orthogonal: its transpose is the
// DCT-III.
func Basis(n int) *mat.Dense {
	b := mat.NewDense(n, n, nil)
	for k := range n {
		row := b.RawRowView(k)
		s := Scale(k, n)
		for i := range n {
			row[i] = s * math.Cos(float64((2*i+1)*k)*math.Pi/float64(2*n))
		}
	}
	return b
}

// cachedBasis returns Basis(n), or its transpose, from the shared cache.
// Callers must not modify the result.
func cachedBasis(n int, transposed bool) *mat.Dense {
	return bases.GetOrCreate(basisKey{n, transposed}, func() *mat.Dense {
		if transposed {
			return mat.DenseCopyOf(Basis(n).T())
		}
		return Basis(n)
	})
}

// dot returns the inner product of a and b in index order.
func dot(a, b []float64) float64 {
	var s float64
	for i, v := range a {
		s += v * b[i]
	}
	return s
}
