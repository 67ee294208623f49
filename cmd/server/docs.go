// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package main provides the Cinediscover HTTP server
//
// @title Cinediscover API
// @version 1.0
// @description Movie and series discovery with filtered, shuffled browse grids and a per-user recommendation feed, backed by TMDB.
// @description
// @description ## Users
// @description
// @description Personalized endpoints read the caller from the `X-User-ID` header. A missing header or the value `guest` is anonymous.
// @description
// @description ## Rate Limiting
// @description
// @description API routes are rate limited per client IP. Exceeding the limit returns 429.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-05-01T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinediscover/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health checks
//
// @tag.name Discovery
// @tag.description Browse, search, details and translations
//
// @tag.name Personalization
// @tag.description Profiles and recommendations
//
//go:generate swag init --dir ../../ --generalInfo cmd/server/docs.go --output ../../docs --parseInternal
package main
