package kinetgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAddEntity is called after each insertion attempt.
	// err is nil if successful.
	RecordAddEntity(duration time.Duration, err error)

	// RecordStep is called after each integration pass (positions,
	// velocities or forces). entities is the active count processed.
	RecordStep(op string, entities int, duration time.Duration)

	// RecordCollisionScan is called after each pairwise collision scan.
	// pairs is the number of colliding pairs found.
	RecordCollisionScan(pairs int, duration time.Duration)

	// RecordSpatialQuery is called after each radius query.
	RecordSpatialQuery(matches int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddEntity(time.Duration, error)   {}
func (NoopMetricsCollector) RecordStep(string, int, time.Duration)  {}
func (NoopMetricsCollector) RecordCollisionScan(int, time.Duration) {}
func (NoopMetricsCollector) RecordSpatialQuery(int, time.Duration)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddEntityCount  atomic.Int64
	AddEntityErrors atomic.Int64
	StepCount       atomic.Int64
	StepTotalNanos  atomic.Int64
	ScanCount       atomic.Int64
	ScanPairs       atomic.Int64
	ScanTotalNanos  atomic.Int64
	QueryCount      atomic.Int64
	QueryMatches    atomic.Int64
}

// RecordAddEntity implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddEntity(duration time.Duration, err error) {
	b.AddEntityCount.Add(1)
	if err != nil {
		b.AddEntityErrors.Add(1)
	}
}

// RecordStep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStep(op string, entities int, duration time.Duration) {
	b.StepCount.Add(1)
	b.StepTotalNanos.Add(duration.Nanoseconds())
}

// RecordCollisionScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCollisionScan(pairs int, duration time.Duration) {
	b.ScanCount.Add(1)
	b.ScanPairs.Add(int64(pairs))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
}

// RecordSpatialQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSpatialQuery(matches int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryMatches.Add(int64(matches))
}
