// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package services adapts server components to suture.Service.
//
// HTTPServerService turns http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful shutdown. MaintenanceService is a ticker
// loop that sweeps expired cache entries and runs BadgerDB value-log GC.
package services
