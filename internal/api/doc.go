// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

/*
Package api exposes the discovery and recommendation engines over HTTP.

The router is built on chi (see chi_router.go) with a global middleware stack
of request IDs, real-IP extraction, panic recovery, CORS and Prometheus
instrumentation. Data endpoints additionally get per-IP rate limiting
(go-chi/httprate) and security headers.

Endpoints:

	GET  /api/v1/health/live                     liveness probe
	GET  /api/v1/health                          cache and upstream breaker status
	GET  /api/v1/discover                        filtered discovery or free-text search
	GET  /api/v1/random-page                     random page index for browse surfaces
	GET  /api/v1/genres/{kind}                   genre list for movie or series
	GET  /api/v1/details/{kind}/{id}             one item with cast, similar items and providers
	GET  /api/v1/translations/{kind}/{id}        languages an item is available in
	GET  /api/v1/translations/{kind}/{id}/{lang} whether an item is available in lang
	GET  /api/v1/recommendations                 personalized feed (X-User-ID header)
	GET  /api/v1/profile                         stored preferences and history
	PUT  /api/v1/profile/genres                  replace preferred genres
	POST /api/v1/profile/history                 record a watched item
	GET  /metrics                                Prometheus metrics
	GET  /swagger/*                              Swagger UI and doc.json

Every JSON response uses the same envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 12}
	}

Errors carry "status": "error" and an "error" object with a machine-readable
code. Upstream failures are not surfaced as errors on listing endpoints: a
listing the upstream could not produce is an empty listing.

User identity comes from the X-User-ID header, set by the authenticating
proxy in front of this service. A missing header (or the literal "guest")
marks a guest.
*/
package api
