// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/discover"
)

func TestDiscover_DefaultsAndViews(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.discoverer.result = &discover.Result{
		Items:    []catalog.Item{sampleItem(603, catalog.KindMovie)},
		Strategy: discover.StrategyDiscover,
		Page:     1,
	}

	w := env.do(t, http.MethodGet, "/api/v1/discover", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data DiscoverResponse
	resp := decodeEnvelope(t, w, &data)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.Metadata.Count)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "https://img.test/w500/p.jpg", data.Items[0].PosterURL)
	assert.Equal(t, []string{"Action"}, data.Items[0].Genres)
	assert.Equal(t, cachePublic, w.Header().Get("Cache-Control"))

	f := env.discoverer.lastFilter(t)
	assert.Equal(t, catalog.KindMovie, f.Kind)
	assert.Equal(t, discover.LanguageNone, f.LanguageMode)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0.0, f.RatingFrom)
	require.NotNil(t, f.RatingTo)
	assert.Equal(t, 10.0, *f.RatingTo)
	assert.True(t, f.RequirePoster)
}

func TestDiscover_FilterMapping(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet,
		"/api/v1/discover?kind=tv&genre=18&language_mode=dubbed&language=de&year_from=1990&year_to=2000&rating_from=6&sort=rating&page=3&posters_only=false&randomize=true",
		nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f := env.discoverer.lastFilter(t)
	assert.Equal(t, catalog.KindSeries, f.Kind)
	assert.Equal(t, 18, f.GenreID)
	assert.Equal(t, discover.LanguageDubbed, f.LanguageMode)
	assert.Equal(t, "de", f.LanguageCode)
	assert.Equal(t, 1990, f.YearFrom)
	assert.Equal(t, 2000, f.YearTo)
	assert.Equal(t, 6.0, f.RatingFrom)
	assert.Equal(t, discover.SortRating, f.Sort)
	assert.Equal(t, 3, f.Page)
	assert.True(t, f.Randomize)
	assert.False(t, f.RequirePoster)
	assert.Equal(t, cacheNone, w.Header().Get("Cache-Control"))
}

func TestDiscover_LanguageWithoutModeMeansOriginal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/api/v1/discover?language=ja", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, discover.LanguageOriginal, env.discoverer.lastFilter(t).LanguageMode)
}

func TestDiscover_RandomPage(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.discoverer.page = 42

	w := env.do(t, http.MethodGet, "/api/v1/discover?random_page=true&page=2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 42, env.discoverer.lastFilter(t).Page)

	// A text query keeps the requested page.
	w = env.do(t, http.MethodGet, "/api/v1/discover?random_page=true&page=2&q=matrix", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, env.discoverer.lastFilter(t).Page)
}

func TestDiscover_SearchIgnoresInconsistentBounds(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	w := env.do(t, http.MethodGet,
		"/api/v1/discover?q=matrix&year_from=2020&year_to=1999&rating_from=8&rating_to=3", nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	f := env.discoverer.lastFilter(t)
	assert.Equal(t, "matrix", f.Query)
	assert.Zero(t, f.YearFrom)
	assert.Zero(t, f.YearTo)
	assert.Zero(t, f.RatingFrom)
}

func TestDiscover_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		code  string
	}{
		{"non-numeric page", "page=abc", ErrCodeBadRequest},
		{"bad bool", "randomize=maybe", ErrCodeBadRequest},
		{"page too large", "page=501", ErrCodeValidation},
		{"unknown kind", "kind=podcast", ErrCodeValidation},
		{"unknown sort", "sort=alphabetical", ErrCodeValidation},
		{"bad language", "language=english", ErrCodeValidation},
		{"inverted years", "year_from=2010&year_to=2000", ErrCodeValidation},
		{"inverted ratings", "rating_from=8&rating_to=5", ErrCodeValidation},
		{"rating out of range", "rating_to=11", ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)
			w := env.do(t, http.MethodGet, "/api/v1/discover?"+tt.query, nil, nil)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
			resp := decodeEnvelope(t, w, nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Empty(t, env.discoverer.filters)
		})
	}
}

func TestRandomPageEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.discoverer.page = 17

	w := env.do(t, http.MethodGet, "/api/v1/random-page", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]int
	decodeEnvelope(t, w, &data)
	assert.Equal(t, 17, data["page"])
}

func TestGenres(t *testing.T) {
	t.Parallel()

	t.Run("upstream", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.catalog.genres = []catalog.Genre{{ID: 1, Name: "One"}}

		w := env.do(t, http.MethodGet, "/api/v1/genres/movie", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data GenreListResponse
		decodeEnvelope(t, w, &data)
		assert.Equal(t, "upstream", data.Source)
		assert.Equal(t, []catalog.Genre{{ID: 1, Name: "One"}}, data.Genres)
		assert.Equal(t, cacheStatic, w.Header().Get("Cache-Control"))
	})

	t.Run("builtin fallback", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.catalog.genresErr = errFakeUpstream

		w := env.do(t, http.MethodGet, "/api/v1/genres/tv", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data GenreListResponse
		decodeEnvelope(t, w, &data)
		assert.Equal(t, "builtin", data.Source)
		assert.Equal(t, catalog.KindSeries, data.Kind)
		assert.Equal(t, catalog.StaticGenres(catalog.KindSeries), data.Genres)
	})

	t.Run("invalid kind", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/v1/genres/books", nil, nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrCodeInvalidKind, decodeEnvelope(t, w, nil).Error.Code)
	})
}
