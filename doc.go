// Package kayn is a frequency-domain image engine.
//
// # Overview
//
// kayn converts a grayscale intensity grid into its 2D discrete cosine
// transform, filters the coefficients with circular lowpass or highpass
// masks, and reconstructs an intensity grid with the inverse transform.
// Every step also yields a displayable raster so a caller can preview the
// coefficient plane next to the image.
//
// # Quick Start
//
//	grid, err := kayn.IntensityFromImage(img)
//	if err != nil {
//	    return err
//	}
//
//	preview, coeff, err := kayn.ForwardTransform(grid)
//	_, low, err := kayn.ApplyLowpass(coeff, 20)
//	smooth, err := kayn.InverseTransform(low)
//
//	out, err := smooth.Image() // *image.Gray
//
// # Layouts
//
// An IntensityGrid is row-major: pixel (x, y) lives at y*Width + x.
// A CoefficientGrid puts horizontal frequency outermost: coefficient (u, v)
// lives at u*Height + v. Rasters follow the layout of the grid they came
// from.
//
// # Concurrency
//
// ForwardTransform and InverseTransform split their work across a fixed
// number of goroutines (GOMAXPROCS by default, see WithWorkers). Results
// are bit-identical for every worker count. All functions are safe for
// concurrent use; no state is shared between calls apart from the logger
// and a cache of cosine bases.
//
// # Logging
//
// kayn is silent by default. Use SetLogger, or WithLogger for a single
// call, to receive Debug records describing each transform.
package kayn
