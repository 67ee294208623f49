// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package metrics holds the Prometheus collectors for Cinediscover.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upstream catalog adapter
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_upstream_requests_total",
			Help: "Upstream catalog requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"}, // outcome: ok, error, timeout, breaker_open
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinediscover_upstream_request_duration_seconds",
			Help:    "Latency of upstream catalog requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"endpoint"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinediscover_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// TTL cache
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_cache_lookups_total",
			Help: "Cache lookups by layer and result",
		},
		[]string{"layer", "result"}, // layer: memory, durable; result: hit, miss, expired, corrupt
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cinediscover_cache_entries",
			Help: "Entries currently held in the in-memory cache",
		},
	)

	// Discovery
	DiscoverRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_discover_requests_total",
			Help: "Discovery requests by strategy",
		},
		[]string{"strategy"}, // discover, search
	)

	DubbedFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_dubbed_fallbacks_total",
			Help: "Dubbed-language fallback steps taken",
		},
		[]string{"step"}, // original, search
	)

	// Recommendations
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinediscover_recommend_duration_seconds",
			Help:    "Time to build a recommendation feed",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_recommend_results_total",
			Help: "Recommendation feeds by source",
		},
		[]string{"source"}, // cache, computed, guest, empty
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinediscover_recommend_candidates",
			Help:    "Candidate pool size before filtering",
			Buckets: []float64{0, 10, 20, 50, 100, 200, 400},
		},
	)

	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinediscover_api_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinediscover_api_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordUpstream records one upstream call.
func RecordUpstream(endpoint, outcome string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCacheLookup counts a cache lookup.
func RecordCacheLookup(layer, result string) {
	CacheLookups.WithLabelValues(layer, result).Inc()
}

// RecordBreakerTransition updates the breaker gauge and transition counter.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// RecordRecommendation records one feed build.
func RecordRecommendation(source string, candidates int, duration time.Duration) {
	RecommendResults.WithLabelValues(source).Inc()
	if source == "computed" || source == "empty" {
		RecommendCandidates.Observe(float64(candidates))
		RecommendDuration.Observe(duration.Seconds())
	}
}

// RecordAPIRequest records one HTTP request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
