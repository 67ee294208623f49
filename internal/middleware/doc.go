// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

/*
Package middleware provides the HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - PrometheusMetrics: request counters and latency histograms keyed by chi route pattern

Both are plain func(http.Handler) http.Handler values and plug into chi directly:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)

Metrics are labelled with the matched route pattern (for example
/api/v1/details/{kind}/{id}) rather than the raw path so that item ids do not
explode label cardinality.
*/
package middleware
