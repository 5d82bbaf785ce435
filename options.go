package sparsevec

import (
	"runtime"
)

type options struct {
	concurrency      int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		concurrency:      runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures BatchDot.
type Option func(*options)

// WithConcurrency limits the number of dot products computed at once.
//
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.concurrency = n
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
// If nil is passed, metrics are discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
