// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

// Package metrics defines the prometheus collectors for the discover
// service. Collectors register themselves with the default registry
// via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestsTotal counts HTTP requests by method, route and status.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discover_api_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)

	// APIRequestDuration observes per-route request latency.
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discover_api_request_duration_seconds",
			Help:    "HTTP request duration by method and route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// APIActiveRequests gauges in-flight HTTP requests.
	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "discover_api_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// FeedBuildDuration observes full feed assembly latency.
	FeedBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discover_feed_build_duration_seconds",
			Help:    "Time to assemble a complete Discover feed",
			Buckets: prometheus.DefBuckets,
		},
	)

	// FeedSectionItems observes item counts per section.
	FeedSectionItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "discover_feed_section_items",
			Help:    "Item count per generated feed section",
			Buckets: []float64{0, 1, 2, 5, 10, 15, 20},
		},
		[]string{"section"},
	)

	// FeedSectionErrors counts omitted sections by section key.
	FeedSectionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discover_feed_section_errors_total",
			Help: "Feed sections omitted due to build errors",
		},
		[]string{"section"},
	)

	// SearchCacheHits counts search/suggest cache hits.
	SearchCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discover_search_cache_hits_total",
			Help: "Search cache hits by query method",
		},
		[]string{"method"},
	)

	// SearchCacheMisses counts search/suggest cache misses.
	SearchCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "discover_search_cache_misses_total",
			Help: "Search cache misses by query method",
		},
		[]string{"method"},
	)

	// SearchResults observes ranked match counts per query.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "discover_search_results",
			Help:    "Total ranked matches per search query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
	)
)
