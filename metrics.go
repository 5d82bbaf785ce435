package sparsevec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordBatchDot is called after each BatchDot call.
	// count is the number of candidates, err is nil if successful.
	RecordBatchDot(count int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatchDot(int, time.Duration, error) {}

// BasicMetricsCollector keeps simple in-memory counters.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	batchCount    atomic.Int64
	batchErrors   atomic.Int64
	productCount  atomic.Int64
	batchNanosSum atomic.Int64
}

// RecordBatchDot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchDot(count int, duration time.Duration, err error) {
	b.batchCount.Add(1)
	b.batchNanosSum.Add(duration.Nanoseconds())
	if err != nil {
		b.batchErrors.Add(1)
		return
	}
	b.productCount.Add(int64(count))
}

// Stats returns a snapshot of the collected counters.
func (b *BasicMetricsCollector) Stats() BasicMetricsStats {
	batches := b.batchCount.Load()

	var avg int64
	if batches > 0 {
		avg = b.batchNanosSum.Load() / batches
	}

	return BasicMetricsStats{
		BatchCount:      batches,
		BatchErrors:     b.batchErrors.Load(),
		ProductCount:    b.productCount.Load(),
		AvgBatchLatency: time.Duration(avg),
	}
}

// BasicMetricsStats is a point-in-time view of BasicMetricsCollector.
type BasicMetricsStats struct {
	BatchCount      int64
	BatchErrors     int64
	ProductCount    int64 // dot products of successful batches
	AvgBatchLatency time.Duration
}
