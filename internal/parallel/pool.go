// Package parallel provides the fork-join worker set used by the transform
// engine.
//
// Work is split statically into contiguous index ranges before dispatch. Each
// range is handled by exactly one task that owns a private output segment,
// and results are reassembled by partition index, never by completion order.
package parallel

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerPanic is returned when a task panics. The whole call fails.
var ErrWorkerPanic = errors.New("parallel: worker panicked")

// Range is the half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Split partitions [0, n) into parts contiguous ranges. Range i covers
// [i*n/parts, (i+1)*n/parts), so sizes differ by at most one and ranges of
// length zero appear when n < parts. If parts <= 0 a single range is returned.
func Split(n, parts int) []Range {
	if parts <= 0 {
		parts = 1
	}
	if n < 0 {
		n = 0
	}
	ranges := make([]Range, parts)
	for i := range parts {
		ranges[i] = Range{Start: i * n / parts, End: (i + 1) * n / parts}
	}
	return ranges
}

// WorkerPool is a fixed-size set of workers for fork-join operations.
//
// The size is decided once at construction. ExecuteAll runs every task,
// blocks until all of them return and reports the first failure. The pool
// holds no goroutines between calls, so there is nothing to close.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the maximum number of tasks running at once.
	workers int
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	return &WorkerPool{workers: workers}
}

// ExecuteAll runs every task with at most Workers() of them in flight and
// waits for all to complete (join barrier). A task error or panic makes the
// whole call fail; the first error is returned.
func (p *WorkerPool) ExecuteAll(ctx context.Context, work []func() error) error {
	if len(work) == 0 {
		return nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, fn := range work {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: task %d: %v", ErrWorkerPanic, i, r)
				}
			}()
			return fn()
		})
	}

	return g.Wait()
}

// Map splits [0, n) into Workers() ranges, runs fn once per range and
// concatenates the returned segments in partition order. Segment i always
// precedes segment i+1 in the result, whatever order the tasks finish in.
func Map[T any](ctx context.Context, p *WorkerPool, n int, fn func(r Range) ([]T, error)) ([]T, error) {
	ranges := Split(n, p.Workers())
	segments := make([][]T, len(ranges))

	work := make([]func() error, len(ranges))
	for i, r := range ranges {
		work[i] = func() error {
			seg, err := fn(r)
			if err != nil {
				return fmt.Errorf("parallel: range [%d,%d): %w", r.Start, r.End, err)
			}
			segments[i] = seg
			return nil
		}
	}

	if err := p.ExecuteAll(ctx, work); err != nil {
		return nil, err
	}

	return lo.Flatten(segments), nil
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
