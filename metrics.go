package textcluster

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each clustering run.
	// documents is the number of raw documents, attempts the number of
	// attempts made, duration the total time taken, err nil if successful.
	RecordRun(documents, attempts int, duration time.Duration, err error)

	// RecordAttempt is called after each attempt. degenerate is true when
	// the attempt left a cluster empty and was discarded.
	RecordAttempt(passes int, degenerate bool)

	// RecordPass is called after each assignment/update pass.
	RecordPass(reassigned int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordAttempt(int, bool)                   {}
func (NoopMetricsCollector) RecordPass(int)                            {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount           atomic.Int64
	RunErrors          atomic.Int64
	RunTotalNanos      atomic.Int64
	DocumentCount      atomic.Int64
	AttemptCount       atomic.Int64
	DegenerateAttempts atomic.Int64
	PassCount          atomic.Int64
	Reassignments      atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(documents, attempts int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.DocumentCount.Add(int64(documents))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordAttempt implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAttempt(passes int, degenerate bool) {
	b.AttemptCount.Add(1)
	if degenerate {
		b.DegenerateAttempts.Add(1)
	}
}

// RecordPass implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPass(reassigned int) {
	b.PassCount.Add(1)
	b.Reassignments.Add(int64(reassigned))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:           b.RunCount.Load(),
		RunErrors:          b.RunErrors.Load(),
		RunAvgNanos:        b.getAvgRunNanos(),
		DocumentCount:      b.DocumentCount.Load(),
		AttemptCount:       b.AttemptCount.Load(),
		DegenerateAttempts: b.DegenerateAttempts.Load(),
		PassCount:          b.PassCount.Load(),
		Reassignments:      b.Reassignments.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount           int64
	RunErrors          int64
	RunAvgNanos        int64
	DocumentCount      int64
	AttemptCount       int64
	DegenerateAttempts int64
	PassCount          int64
	Reassignments      int64
}
