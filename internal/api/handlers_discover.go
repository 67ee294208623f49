// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/discover"
	"github.com/tomtom215/cinediscover/internal/logging"
)

// DiscoverResponse is the data of GET /api/v1/discover.
type DiscoverResponse struct {
	Items    []ItemView        `json:"items"`
	Strategy discover.Strategy `json:"strategy"`
	Page     int               `json:"page"`
	Fallback string            `json:"fallback,omitempty"`
}

// Discover handles GET /api/v1/discover.
//
// Query parameters are described on DiscoverRequest. An upstream failure
// produces an empty item list, not an error.
// @Summary Discover titles
// @Description Browses movies or series by genre, language, year and rating. A text query switches to search and ignores the other filters.
// @Tags Discovery
// @Produce json
// @Param kind query string false "movie (default) or series"
// @Param genre query string false "Genre id or built-in genre name"
// @Param language_mode query string false "none, original or dubbed"
// @Param language query string false "ISO 639-1 language code"
// @Param year_from query int false "Earliest release year"
// @Param year_to query int false "Latest release year"
// @Param rating_from query number false "Minimum vote average" default(0)
// @Param rating_to query number false "Maximum vote average" default(10)
// @Param sort query string false "popularity, rating or newest"
// @Param q query string false "Free-text search"
// @Param page query int false "Upstream page" default(1)
// @Param page_size query int false "Items returned"
// @Param random_page query bool false "Start from a random page"
// @Param randomize query bool false "Shuffle the page"
// @Param posters_only query bool false "Drop items without a poster" default(true)
// @Success 200 {object} APIResponse{data=DiscoverResponse}
// @Failure 400 {object} APIResponse
// @Router /api/v1/discover [get]
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := parseDiscoverRequest(r.URL.Query())
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	filter := req.Filter()
	if req.RandomPage && filter.Query == "" {
		filter.Page = h.discoverer.RandomPage()
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	res := h.discoverer.Discover(ctx, filter)

	logging.Ctx(r.Context()).Debug().
		Str("strategy", string(res.Strategy)).
		Str("kind", filter.Kind.String()).
		Int("page", res.Page).
		Int("items", len(res.Items)).
		Str("fallback", res.Fallback).
		Msg("discover request served")

	if !filter.Randomize && !req.RandomPage {
		w.Header().Set("Cache-Control", cachePublic)
	}
	respondSuccess(w, r, DiscoverResponse{
		Items:    h.views(res.Items),
		Strategy: res.Strategy,
		Page:     res.Page,
		Fallback: res.Fallback,
	}, Metadata{
		QueryTimeMS: time.Since(start).Milliseconds(),
		Count:       len(res.Items),
	})
}

// RandomPage handles GET /api/v1/random-page and returns a page index for a
// "shuffle" browse action.
// @Summary Random page
// @Tags Discovery
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]int}
// @Router /api/v1/random-page [get]
func (h *Handler) RandomPage(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]int{"page": h.discoverer.RandomPage()}, Metadata{})
}

// GenreListResponse is the data of GET /api/v1/genres/{kind}.
type GenreListResponse struct {
	Kind   catalog.Kind    `json:"kind"`
	Genres []catalog.Genre `json:"genres"`
	Source string          `json:"source"` // upstream or builtin
}

// Genres handles GET /api/v1/genres/{kind}. The built-in list is served when
// the upstream list is unavailable.
// @Summary List genres
// @Tags Discovery
// @Produce json
// @Param kind path string true "movie or series"
// @Success 200 {object} APIResponse{data=GenreListResponse}
// @Failure 400 {object} APIResponse
// @Router /api/v1/genres/{kind} [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidKind, "kind must be movie or series", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	resp := GenreListResponse{Kind: kind, Source: "upstream"}
	genres, err := h.catalog.Genres(ctx, kind)
	if err != nil || len(genres) == 0 {
		if err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("kind", kind.String()).Msg("serving built-in genre list")
		}
		genres = catalog.StaticGenres(kind)
		resp.Source = "builtin"
	}
	resp.Genres = genres

	w.Header().Set("Cache-Control", cacheStatic)
	respondSuccess(w, r, resp, Metadata{Count: len(genres)})
}
