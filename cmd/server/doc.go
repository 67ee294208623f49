// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

/*
Package main is the entry point for the Cinediscover server.

Cinediscover serves movie and series discovery listings (filtered, shuffled,
poster-only grids with a dubbed-language fallback) and a per-user
recommendation feed, both backed by TMDB.

# Application Architecture

	RootSupervisor ("cinediscover")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService (cache sweep, BadgerDB value-log GC)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Storage: BadgerDB for durable cache entries and user profiles
 4. TMDB client: rate limited, circuit-broken, cached
 5. Engines: discovery and recommendation
 6. HTTP: chi router with CORS, per-IP rate limiting and Prometheus metrics
 7. Supervisor tree, until SIGINT or SIGTERM

# Configuration

The only required setting is the TMDB credential:

	export TMDB_API_KEY=your-v3-key-or-v4-token
	./cinediscover

Commonly tuned variables:
  - HTTP_HOST, HTTP_PORT: listen address (default 0.0.0.0:8080)
  - STORAGE_PATH, STORAGE_IN_MEMORY: BadgerDB location
  - CACHE_DURABLE: persist upstream responses and feeds across restarts
  - CORS_ORIGINS, RATE_LIMIT_REQS, RATE_LIMIT_WINDOW
  - LOG_LEVEL, LOG_FORMAT
  - DISCOVER_SEED, RECOMMEND_SEED: fixed RNG seeds for reproducible shuffles

# API Documentation

Swagger documentation is available at /swagger/index.html. Regenerate the
docs package with go generate ./cmd/server after changing handler annotations.

# Signal Handling

On SIGINT or SIGTERM the HTTP server stops accepting connections and drains
in-flight requests for HTTP_SHUTDOWN_TIMEOUT, then storage is closed.
*/
package main
