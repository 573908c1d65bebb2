package alfpy

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    matrixCounter   prometheus.Counter
//	    matrixHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordMatrix(sequences int, duration time.Duration, err error) {
//	    p.matrixCounter.Inc()
//	    p.matrixHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordPattern is called after word extraction.
	// words is the number of distinct words found.
	RecordPattern(words int, duration time.Duration, err error)

	// RecordVectors is called after vectorization with the table shape.
	RecordVectors(rows, dim int, duration time.Duration, err error)

	// RecordMatrix is called after the pairwise matrix is built.
	// sequences is the matrix order.
	RecordMatrix(sequences int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPattern(int, time.Duration, error)      {}
func (NoopMetricsCollector) RecordVectors(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMatrix(int, time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PatternCount      atomic.Int64
	PatternErrors     atomic.Int64
	PatternWords      atomic.Int64
	PatternTotalNanos atomic.Int64
	VectorCount       atomic.Int64
	VectorErrors      atomic.Int64
	VectorCells       atomic.Int64
	VectorTotalNanos  atomic.Int64
	MatrixCount       atomic.Int64
	MatrixErrors      atomic.Int64
	MatrixCells       atomic.Int64
	MatrixTotalNanos  atomic.Int64
}

// RecordPattern implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPattern(words int, duration time.Duration, err error) {
	b.PatternCount.Add(1)
	b.PatternTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PatternErrors.Add(1)
		return
	}
	b.PatternWords.Add(int64(words))
}

// RecordVectors implements MetricsCollector.
func (b *BasicMetricsCollector) RecordVectors(rows, dim int, duration time.Duration, err error) {
	b.VectorCount.Add(1)
	b.VectorTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.VectorErrors.Add(1)
		return
	}
	b.VectorCells.Add(int64(rows) * int64(dim))
}

// RecordMatrix implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMatrix(sequences int, duration time.Duration, err error) {
	b.MatrixCount.Add(1)
	b.MatrixTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MatrixErrors.Add(1)
		return
	}
	b.MatrixCells.Add(int64(sequences) * int64(sequences-1) / 2)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PatternCount:    b.PatternCount.Load(),
		PatternErrors:   b.PatternErrors.Load(),
		PatternWords:    b.PatternWords.Load(),
		PatternAvgNanos: avg(b.PatternTotalNanos.Load(), b.PatternCount.Load()),
		VectorCount:     b.VectorCount.Load(),
		VectorErrors:    b.VectorErrors.Load(),
		VectorCells:     b.VectorCells.Load(),
		VectorAvgNanos:  avg(b.VectorTotalNanos.Load(), b.VectorCount.Load()),
		MatrixCount:     b.MatrixCount.Load(),
		MatrixErrors:    b.MatrixErrors.Load(),
		MatrixCells:     b.MatrixCells.Load(),
		MatrixAvgNanos:  avg(b.MatrixTotalNanos.Load(), b.MatrixCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PatternCount    int64
	PatternErrors   int64
	PatternWords    int64
	PatternAvgNanos int64
	VectorCount     int64
	VectorErrors    int64
	VectorCells     int64
	VectorAvgNanos  int64
	MatrixCount     int64
	MatrixErrors    int64
	MatrixCells     int64 // pairs evaluated
	MatrixAvgNanos  int64
}
