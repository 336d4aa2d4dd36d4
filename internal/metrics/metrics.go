// Package metrics provides Prometheus metrics for the GingerDex server.
// Scrape these at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dex_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Snapshot Metrics
	SnapshotCards = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dex_snapshot_cards",
			Help: "Number of cards in the loaded catalog",
		},
	)

	SnapshotTrainers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dex_snapshot_trainers",
			Help: "Number of trainers on the loaded leaderboard",
		},
	)

	SnapshotLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dex_snapshot_load_errors_total",
			Help: "Snapshot loads that failed to decode or validate",
		},
	)

	// View cache
	ViewCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_view_cache_hits_total",
			Help: "View cache hit count",
		},
		[]string{"view"}, // "gallery", "trainer", "achievements"
	)

	ViewCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_view_cache_misses_total",
			Help: "View cache miss count",
		},
		[]string{"view"},
	)

	// Pack Metrics
	PacksOpenedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dex_packs_opened_total",
			Help: "Total number of packs opened",
		},
	)

	CardsDrawnTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_cards_drawn_total",
			Help: "Cards drawn from packs by rarity",
		},
		[]string{"rarity"},
	)

	PackRequestsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dex_pack_requests_rejected_total",
			Help: "Pack requests refused before drawing",
		},
		[]string{"reason"}, // "rate_limited", "invalid_count", "unknown_trainer", "empty_pool"
	)

	ComparisonsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dex_comparisons_total",
			Help: "Total number of card comparisons",
		},
	)
)
