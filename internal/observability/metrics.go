package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EngagementEvents counts engagement actions by kind and outcome.
	// Kind is one of follow, unfollow, like, unlike, comment; outcome is
	// "applied" or "noop" (duplicate follow, repeat like, missing edge).
	EngagementEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillconnect_engagement_events_total",
		Help: "Total engagement actions processed by kind and outcome",
	}, []string{"kind", "outcome"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// RealtimeEventsTotal counts realtime events fanned out by type.
	RealtimeEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillconnect_realtime_events_total",
		Help: "Total realtime events published by type",
	}, []string{"event_type"})

	// RealtimeBackpressureDrops counts messages dropped due to slow clients.
	RealtimeBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillconnect_realtime_backpressure_drops_total",
		Help: "Total realtime messages dropped due to backpressure",
	}, []string{"reason"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
