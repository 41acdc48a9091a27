package kinetgo

import (
	"github.com/hupe1980/kinetgo/resource"
)

type options struct {
	logger     *Logger
	metrics    MetricsCollector
	controller *resource.Controller
}

// Option configures Store construction.
type Option func(*options)

// WithLogger configures the diagnostic logger.
//
// If nil is passed, the default no-op logger is kept.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsCollector configures operational metrics collection.
//
// If nil is passed, the default no-op collector is kept.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc != nil {
			o.metrics = mc
		}
	}
}

// WithMemoryLimit enforces a hard limit on the bytes the store may pin for
// its arrays. Construction fails with resource.ErrMemoryLimitExceeded when
// the store's fixed footprint does not fit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.controller = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

// WithResourceController attaches a shared resource controller, allowing one
// memory budget to span several stores.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

func defaultOptions() options {
	return options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}
