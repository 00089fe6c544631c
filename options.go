package vecsum

import (
	"github.com/hupe1980/vecsum/internal/mem"
	"github.com/hupe1980/vecsum/resource"
)

type options struct {
	allocator        mem.Allocator
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures vector creation.
type Option func(*options)

// WithOffHeap places the element buffer in an anonymous memory mapping
// outside the Go heap. The buffer is unmapped by Close, so any View obtained
// from Start must not be used afterwards.
func WithOffHeap() Option {
	return func(o *options) {
		o.allocator = mem.OffHeapAllocator{}
	}
}

// WithResourceController charges the header and element buffer against c.
//
// A controller with a memory limit makes New fail with ErrAllocationFailed
// once the limit would be exceeded. Its MemoryUsage returns to zero when
// every vector created with it has been closed.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetricsCollector sets the collector notified on every allocation and release.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
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

func withAllocator(a mem.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		allocator:        mem.HeapAllocator{},
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(o)
	}
	return o
}
