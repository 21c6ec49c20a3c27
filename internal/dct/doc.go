// Package dct implements the frequency-domain engine: a 2D Type-II DCT and
// its inverse (Type-III), circular band masks and min-max normalization of
// coefficient planes into displayable pixels.
//
// The 1D transform pair is orthonormal:
//
//	X[k] = C(k,N) * sum_{n=0}^{N-1} x[n] * cos((2n+1)*k*pi / (2N))
//	C(0,N) = sqrt(1/N), C(k>0,N) = sqrt(2/N)
//
// Layouts:
//   - intensity planes are row-major, index(x, y) = y*width + x
//   - coefficient planes put horizontal frequency outermost,
//     index(u, v) = u*height + v
//
// Forward and Inverse split work over u and x respectively into contiguous
// ranges, one per worker, and reassemble in partition order. Every output
// value is computed by the same sequence of floating-point operations
// whichever worker owns it, so results do not depend on the worker count.
package dct
