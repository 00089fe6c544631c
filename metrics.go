package vecsum

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting allocation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAlloc is called after each New.
	// bytes is the header plus element buffer size that was requested,
	// err is nil if successful.
	RecordAlloc(bytes int64, duration time.Duration, err error)

	// RecordFree is called once per vector when Close releases its memory.
	RecordFree(bytes int64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordFree(int64)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and for leak checks in tests.
type BasicMetricsCollector struct {
	AllocCount      atomic.Int64
	AllocErrors     atomic.Int64
	AllocBytes      atomic.Int64
	AllocTotalNanos atomic.Int64
	FreeCount       atomic.Int64
	FreeBytes       atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int64, duration time.Duration, err error) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(bytes)
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes int64) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(bytes)
}

// LiveVectors returns the number of successfully created vectors not yet closed.
func (b *BasicMetricsCollector) LiveVectors() int64 {
	return b.AllocCount.Load() - b.AllocErrors.Load() - b.FreeCount.Load()
}

// LiveBytes returns the bytes held by vectors not yet closed.
func (b *BasicMetricsCollector) LiveBytes() int64 {
	return b.AllocBytes.Load() - b.FreeBytes.Load()
}
