// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cricktrackr"

var (
	// SyncCyclesTotal counts synchronization cycles by kind and the source that served the caller.
	SyncCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "cycles_total",
			Help:      "Total number of synchronization cycles by kind and source",
		},
		[]string{"kind", "source"},
	)

	// ReconciledItemsTotal counts per-item outcomes of sync, import and seed batches.
	ReconciledItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "items_total",
			Help:      "Total number of reconciled items by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	// ProviderRequestsTotal counts outbound provider calls.
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "requests_total",
			Help:      "Total number of provider requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// ProviderRequestDuration tracks provider call latency including retries.
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "request_duration_seconds",
			Help:      "Duration of provider requests in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"endpoint"},
	)

	// MalformedItemsTotal counts provider items dropped at decode or normalization.
	MalformedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provider",
			Name:      "malformed_items_total",
			Help:      "Total number of provider items rejected as malformed",
		},
		[]string{"kind"},
	)
)

const (
	SourceProvider = "provider"
	SourceFallback = "fallback"

	KindMatch     = "match"
	KindPlayer    = "player"
	KindFillStats = "player_fill_stats"
)
