package kayn

import "log/slog"

// Option configures a single transform call.
//
// Example:
//
//	// Default: GOMAXPROCS workers, package logger
//	preview, coeff, err := kayn.ForwardTransform(grid)
//
//	// Single-threaded with a dedicated logger
//	preview, coeff, err := kayn.ForwardTransform(grid,
//	    kayn.WithWorkers(1), kayn.WithLogger(log))
type Option func(*options)

type options struct {
	workers int
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		logger:  nil,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithWorkers fixes the number of partitions a transform is split into.
// Zero or negative means runtime.GOMAXPROCS(0). The result does not depend
// on this value.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger overrides the package logger for one call.
// A nil logger keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
