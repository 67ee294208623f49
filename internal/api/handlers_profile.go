// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/cinediscover/internal/profile"
)

// requireUser resolves the caller and rejects guests with 401.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, authenticated, err := userFromRequest(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUser, "Invalid "+UserIDHeader+" header", nil)
		return "", false
	}
	if !authenticated {
		respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Log in to manage your profile", nil)
		return "", false
	}
	return userID, true
}

// GetProfile handles GET /api/v1/profile. A user without a stored profile
// gets an empty one.
// @Summary Get profile
// @Tags Personalization
// @Produce json
// @Param X-User-ID header string true "User id"
// @Success 200 {object} APIResponse{data=profile.Profile}
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/v1/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	p, err := h.profiles.Profile(r.Context(), userID)
	if errors.Is(err, profile.ErrNotFound) {
		p = &profile.Profile{UserID: userID, PreferredGenreIDs: []int{}, History: []profile.HistoryEntry{}}
	} else if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to load profile", err)
		return
	}

	w.Header().Set("Cache-Control", cacheNone)
	respondSuccess(w, r, p, Metadata{})
}

// SetPreferredGenres handles PUT /api/v1/profile/genres.
//
// Body: {"genre_ids": [28, 878]} with at most three ids.
// @Summary Set preferred genres
// @Tags Personalization
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body GenresRequest true "Up to three genre ids"
// @Success 200 {object} APIResponse{data=GenresRequest}
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/v1/profile/genres [put]
func (h *Handler) SetPreferredGenres(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req GenresRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	if err := h.profiles.SetPreferredGenres(r.Context(), userID, req.GenreIDs); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to save preferences", err)
		return
	}

	respondSuccess(w, r, map[string]interface{}{"genre_ids": req.GenreIDs}, Metadata{})
}

// AppendHistory handles POST /api/v1/profile/history.
//
// Body: {"item_id": 603, "kind": "movie", "watched_at": "2026-01-02T15:04:05Z"};
// watched_at defaults to now.
// @Summary Record a watched title
// @Tags Personalization
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User id"
// @Param request body HistoryRequest true "Watched item"
// @Success 201 {object} APIResponse{data=profile.HistoryEntry}
// @Failure 400 {object} APIResponse
// @Failure 401 {object} APIResponse
// @Router /api/v1/profile/history [post]
func (h *Handler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req HistoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	entry := profile.HistoryEntry{ItemID: req.ItemID, Kind: req.kind(), WatchedAt: time.Now().UTC()}
	if req.WatchedAt != nil {
		entry.WatchedAt = req.WatchedAt.UTC()
	}

	if err := h.profiles.AppendHistory(r.Context(), userID, entry); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to record history", err)
		return
	}

	respondJSON(w, r, http.StatusCreated, &APIResponse{
		Status:   "success",
		Data:     entry,
		Metadata: Metadata{Timestamp: time.Now()},
	})
}
