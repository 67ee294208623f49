// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinediscover/internal/cache"
)

// HealthStatus is the data of GET /api/v1/health.
type HealthStatus struct {
	Status        string       `json:"status"` // healthy or degraded
	Uptime        float64      `json:"uptime_seconds"`
	UpstreamState string       `json:"upstream_circuit"`
	Cache         *cache.Stats `json:"cache,omitempty"`
	CacheHitRate  float64      `json:"cache_hit_rate"` // percent
}

// HealthLive handles liveness probes. It returns 200 while the process runs,
// regardless of the upstream.
// @Summary Liveness
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, Metadata{})
}

// Health reports the upstream circuit state and cache counters. An open
// circuit marks the service degraded; it still answers with 200 because
// listings degrade to empty rather than fail.
// @Summary Health
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "healthy",
		Uptime:        time.Since(h.startTime).Seconds(),
		UpstreamState: h.catalog.BreakerState(),
	}
	if status.UpstreamState == "open" {
		status.Status = "degraded"
	}
	if h.cache != nil {
		stats := h.cache.Stats()
		status.Cache = &stats
		status.CacheHitRate = h.cache.HitRate()
	}

	respondSuccess(w, r, status, Metadata{})
}
