// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinediscover/internal/recommend"
)

// loginRequiredMessage accompanies the empty feed served to guests.
const loginRequiredMessage = "Log in to get personalized recommendations"

// FeedResponse is the data of GET /api/v1/recommendations.
type FeedResponse struct {
	Items         []ItemView `json:"items"`
	LoginRequired bool       `json:"login_required"`
	Message       string     `json:"message,omitempty"`
	CacheHit      bool       `json:"cache_hit"`
	Candidates    int        `json:"candidates"`
	GeneratedAt   time.Time  `json:"generated_at"`
}

// Recommendations handles GET /api/v1/recommendations for the user named by
// the X-User-ID header. Guests receive an empty feed with login_required set.
// @Summary Personalized recommendations
// @Tags Personalization
// @Produce json
// @Param X-User-ID header string false "User id; absent or guest for anonymous"
// @Success 200 {object} APIResponse{data=FeedResponse}
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, authenticated, err := userFromRequest(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUser, "Invalid "+UserIDHeader+" header", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	feed, err := h.recommender.Recommend(ctx, recommend.Request{UserID: userID, Guest: !authenticated})
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Recommendations are temporarily unavailable", err)
		return
	}

	resp := FeedResponse{
		Items:         h.views(feed.Items),
		LoginRequired: feed.LoginRequired,
		CacheHit:      feed.CacheHit,
		Candidates:    feed.Candidates,
		GeneratedAt:   feed.GeneratedAt,
	}
	if feed.LoginRequired {
		resp.Message = loginRequiredMessage
	} else {
		w.Header().Set("Cache-Control", cachePrivate)
	}

	respondSuccess(w, r, resp, Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Cached:      feed.CacheHit,
		Count:       len(feed.Items),
	})
}
