package peergo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each load or reload.
	// loaded/dropped are record counts, err is the load diagnostic.
	RecordLoad(loaded, dropped int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	RecordSearch(results int, duration time.Duration)

	// RecordQuery is called after each aggregation/listing query.
	// kind is the query class ("count_by", "pairs", "page", "list",
	// "overview", "prefixes").
	RecordQuery(kind string, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration)           {}
func (NoopMetricsCollector) RecordQuery(string, time.Duration)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	RecordsLoaded   atomic.Int64
	RecordsDropped  atomic.Int64
	SearchCount     atomic.Int64
	SearchResults   atomic.Int64
	QueryCount      atomic.Int64
	QueryTotalNanos atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(loaded, dropped int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	b.RecordsLoaded.Add(int64(loaded))
	b.RecordsDropped.Add(int64(dropped))
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(results int, _ time.Duration) {
	b.SearchCount.Add(1)
	b.SearchResults.Add(int64(results))
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(_ string, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}
