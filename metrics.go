package kdgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations must be safe for concurrent use: SearchBatch records
// from several goroutines.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(k, results int, duration time.Duration, err error) {
//	    p.searchHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordBuild is called after a bulk construction of points distinct points.
	RecordBuild(points int, duration time.Duration)

	// RecordInsert is called after each insert. replaced reports whether an
	// existing point had its value replaced.
	RecordInsert(replaced bool, duration time.Duration)

	// RecordSearch is called after each k-nearest-neighbour search.
	// results is the number of neighbours returned, err is nil if successful.
	RecordSearch(k, results int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)              {}
func (NoopMetricsCollector) RecordInsert(bool, time.Duration)            {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount       atomic.Int64
	BuildPoints      atomic.Int64
	BuildTotalNanos  atomic.Int64
	InsertCount      atomic.Int64
	InsertReplaced   atomic.Int64
	InsertTotalNanos atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildPoints.Add(int64(points))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(replaced bool, duration time.Duration) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if replaced {
		b.InsertReplaced.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, results int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchResults.Add(int64(results))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildPoints:    b.BuildPoints.Load(),
		BuildAvgNanos:  avg(b.BuildTotalNanos.Load(), b.BuildCount.Load()),
		InsertCount:    b.InsertCount.Load(),
		InsertReplaced: b.InsertReplaced.Load(),
		InsertAvgNanos: avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchResults:  b.SearchResults.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildPoints    int64
	BuildAvgNanos  int64
	InsertCount    int64
	InsertReplaced int64
	InsertAvgNanos int64
	SearchCount    int64
	SearchErrors   int64
	SearchResults  int64
	SearchAvgNanos int64
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}
