// Package metrics provides Prometheus metrics for catalog-sync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncPassesTotal tracks sync passes by kind and terminal status
	SyncPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_sync",
			Subsystem: "sync",
			Name:      "passes_total",
			Help:      "Total number of sync passes by kind and status",
		},
		[]string{"kind", "status"},
	)

	// SyncPassDuration tracks sync pass duration in seconds
	SyncPassDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog_sync",
			Subsystem: "sync",
			Name:      "pass_duration_seconds",
			Help:      "Duration of sync passes in seconds",
			Buckets:   []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
		},
		[]string{"kind"},
	)

	// ProductsSynced tracks products written to the store
	ProductsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_sync",
			Subsystem: "store",
			Name:      "products_synced_total",
			Help:      "Total number of products upserted",
		},
		[]string{"kind"},
	)

	// ProductsDeleted tracks products removed by the deletion diff
	ProductsDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "catalog_sync",
			Subsystem: "store",
			Name:      "products_deleted_total",
			Help:      "Total number of products deleted by full syncs",
		},
	)

	// UpstreamRequestsTotal tracks upstream page requests
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_sync",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of upstream page requests",
		},
		[]string{"collection", "status_code"},
	)

	// UpstreamRequestDuration tracks upstream page request duration
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "catalog_sync",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Duration of upstream page requests in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"collection"},
	)

	// CacheLookups tracks response cache lookups by result (hit, miss, expired, error)
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "catalog_sync",
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Total number of response cache lookups by result",
		},
		[]string{"result"},
	)
)

// RecordSyncPass records a finished sync pass
func RecordSyncPass(kind, status string, durationSeconds float64, synced, deleted int) {
	SyncPassesTotal.WithLabelValues(kind, status).Inc()
	SyncPassDuration.WithLabelValues(kind).Observe(durationSeconds)
	ProductsSynced.WithLabelValues(kind).Add(float64(synced))
	ProductsDeleted.Add(float64(deleted))
}

// RecordUpstreamRequest records an upstream page request
func RecordUpstreamRequest(collection, statusCode string, durationSeconds float64) {
	UpstreamRequestsTotal.WithLabelValues(collection, statusCode).Inc()
	UpstreamRequestDuration.WithLabelValues(collection).Observe(durationSeconds)
}

// RecordCacheLookup records a response cache lookup
func RecordCacheLookup(result string) {
	CacheLookups.WithLabelValues(result).Inc()
}
