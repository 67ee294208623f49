// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/logging"
	"github.com/tomtom215/cinediscover/internal/tmdb"
)

// DetailsResponse is the data of GET /api/v1/details/{kind}/{id}.
type DetailsResponse struct {
	*tmdb.Details

	PosterURL       string     `json:"poster_url,omitempty"`
	BackdropURL     string     `json:"backdrop_url,omitempty"`
	Similar         []ItemView `json:"similar,omitempty"`
	Recommendations []ItemView `json:"recommendations,omitempty"`
}

// Details handles GET /api/v1/details/{kind}/{id}.
//
// An item the upstream cannot return, for whatever reason, is reported as
// 404: callers cannot tell a missing item from an unreachable upstream.
// @Summary Title details
// @Tags Discovery
// @Produce json
// @Param kind path string true "movie or series"
// @Param id path int true "Upstream id"
// @Success 200 {object} APIResponse{data=DetailsResponse}
// @Failure 400 {object} APIResponse
// @Failure 404 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/details/{kind}/{id} [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	kind, id, ok := h.itemParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	d, err := h.catalog.Details(ctx, kind, id)
	if err != nil || d == nil {
		if err != nil && !tmdb.IsNotFound(err) {
			logging.Ctx(r.Context()).Warn().Err(err).Str("kind", kind.String()).Int("id", id).Msg("details unavailable")
		}
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Item not available", nil)
		return
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, DetailsResponse{
		Details:         d,
		PosterURL:       h.catalog.ImageURL(d.PosterPath, tmdb.PosterMedium),
		BackdropURL:     h.catalog.ImageURL(d.BackdropPath, tmdb.BackdropLarge),
		Similar:         h.views(d.Similar),
		Recommendations: h.views(d.Recommendations),
	}, Metadata{QueryTimeMS: time.Since(start).Milliseconds()})
}

// TranslationView is one available language of an item.
type TranslationView struct {
	tmdb.Translation
	LanguageName string `json:"language_name"`
}

// Translations handles GET /api/v1/translations/{kind}/{id}. Upstream
// failures yield an empty list.
// @Summary List translations
// @Tags Discovery
// @Produce json
// @Param kind path string true "movie or series"
// @Param id path int true "Upstream id"
// @Success 200 {object} APIResponse{data=[]TranslationView}
// @Failure 400 {object} APIResponse
// @Router /api/v1/translations/{kind}/{id} [get]
func (h *Handler) Translations(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.itemParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	translations := tmdb.Collapse(h.catalog.Translations(ctx, kind, id))

	out := make([]TranslationView, len(translations))
	for i, t := range translations {
		out[i] = TranslationView{Translation: t, LanguageName: catalog.LanguageName(t.Language)}
	}

	respondSuccess(w, r, out, Metadata{Count: len(out)})
}

// TranslationAvailability is the data of
// GET /api/v1/translations/{kind}/{id}/{lang}.
type TranslationAvailability struct {
	Kind      catalog.Kind `json:"kind"`
	ID        int          `json:"id"`
	Language  string       `json:"language"`
	Available bool         `json:"available"`
}

// TranslationAvailable handles GET /api/v1/translations/{kind}/{id}/{lang}.
// Unlike the list endpoint an upstream failure is reported, since "not
// available" would be a wrong answer.
// @Summary Check a translation
// @Tags Discovery
// @Produce json
// @Param kind path string true "movie or series"
// @Param id path int true "Upstream id"
// @Param lang path string true "ISO 639-1 language code"
// @Success 200 {object} APIResponse{data=TranslationAvailability}
// @Failure 400 {object} APIResponse
// @Failure 503 {object} APIResponse
// @Router /api/v1/translations/{kind}/{id}/{lang} [get]
func (h *Handler) TranslationAvailable(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.itemParams(w, r)
	if !ok {
		return
	}
	lang, err := catalog.LanguageCode(chi.URLParam(r, "lang"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "lang must be an ISO 639-1 code", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	available, err := h.catalog.HasTranslation(ctx, kind, id, lang)
	if err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("kind", kind.String()).Int("id", id).Msg("translation lookup failed")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "translations are temporarily unavailable", nil)
		return
	}

	w.Header().Set("Cache-Control", cachePublic)
	respondSuccess(w, r, TranslationAvailability{Kind: kind, ID: id, Language: lang, Available: available}, Metadata{})
}

func (h *Handler) itemParams(w http.ResponseWriter, r *http.Request) (catalog.Kind, int, bool) {
	kind, err := pathKind(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidKind, "kind must be movie or series", nil)
		return "", 0, false
	}
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidID, "id must be a positive integer", nil)
		return "", 0, false
	}
	return kind, id, true
}
