package dct

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/becelli/FCT-Photo-Editor/internal/color"
	"github.com/becelli/FCT-Photo-Editor/internal/parallel"
)

// Engine runs the parallel forward and inverse transforms.
//
// An Engine is built for one call: the worker count is fixed when it is
// created and no goroutines outlive Forward or Inverse.
type Engine struct {
	pool *parallel.WorkerPool
	log  *slog.Logger
}

// New returns an engine with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used. A nil logger discards output.
func New(workers int, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Engine{pool: parallel.NewWorkerPool(workers), log: log}
}

// Workers returns the number of partitions each transform is split into.
func (e *Engine) Workers() int {
	return e.pool.Workers()
}

// Forward computes the DCT-II coefficient plane of a row-major intensity
// plane. The result is indexed u*height + v.
func (e *Engine) Forward(pix []uint8, width, height int) ([]float32, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimensions, len(pix), width, height)
	}

	start := time.Now()

	// plane row y holds the intensities of image row y.
	plane := mat.NewDense(height, width, nil)
	data := plane.RawMatrix().Data
	for i, v := range pix {
		data[i] = float64(v)
	}
	bw, bh := cachedBasis(width, false), cachedBasis(height, false)

	coeff, err := parallel.Map(context.Background(), e.pool, width, func(r parallel.Range) ([]float32, error) {
		seg := make([]float32, 0, r.Len()*height)
		partial := make([]float64, height)
		for u := r.Start; u < r.End; u++ {
			bu := bw.RawRowView(u)
			for y := range height {
				partial[y] = dot(bu, plane.RawRowView(y))
			}
			for v := range height {
				seg = append(seg, float32(dot(bh.RawRowView(v), partial)))
			}
		}
		return seg, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dct: forward: %w", err)
	}

	e.logDone("dct forward", width, height, start)
	return coeff, nil
}

// Inverse reconstructs a row-major intensity plane from a coefficient plane
// indexed u*height + v. Values are rounded and clamped into [0,255].
func (e *Engine) Inverse(coeff []float32, width, height int) ([]uint8, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(coeff) != width*height {
		return nil, fmt.Errorf("%w: %d coefficients for %dx%d", ErrIndexMismatch, len(coeff), width, height)
	}

	start := time.Now()

	// byV row v holds coeff(u, v) for every u.
	byV := mat.NewDense(height, width, nil)
	for u := range width {
		for v := range height {
			byV.Set(v, u, float64(coeff[u*height+v]))
		}
	}
	// Row x of bwT is cosine basis column x: C(u,W)cos((2x+1)u*pi/2W) for every u.
	bwT := cachedBasis(width, true)
	bhT := cachedBasis(height, true)

	// Segments come back x-major: entry (x, y) at x*height + y.
	columns, err := parallel.Map(context.Background(), e.pool, width, func(r parallel.Range) ([]uint8, error) {
		seg := make([]uint8, 0, r.Len()*height)
		partial := make([]float64, height)
		for x := r.Start; x < r.End; x++ {
			ax := bwT.RawRowView(x)
			for v := range height {
				partial[v] = dot(byV.RawRowView(v), ax)
			}
			for y := range height {
				seg = append(seg, color.Quantize(dot(bhT.RawRowView(y), partial)))
			}
		}
		return seg, nil
	})
	if err != nil {
		return nil, fmt.Errorf("dct: inverse: %w", err)
	}

	pix := make([]uint8, width*height)
	for x := range width {
		for y := range height {
			pix[y*width+x] = columns[x*height+y]
		}
	}

	e.logDone("dct inverse", width, height, start)
	return pix, nil
}

func (e *Engine) logDone(msg string, width, height int, start time.Time) {
	if !e.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	stats := bases.Stats()
	e.log.Debug(msg,
		"width", width, "height", height,
		"workers", e.pool.Workers(), "elapsed", time.Since(start),
		"basis_hits", stats.Hits, "basis_misses", stats.Misses)
}
