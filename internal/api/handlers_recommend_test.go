// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/recommend"
)

func TestRecommendations_Guest(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"", "guest", "Guest"} {
		env := newTestEnv(t)
		headers := map[string]string{}
		if header != "" {
			headers[UserIDHeader] = header
		}

		w := env.do(t, http.MethodGet, "/api/v1/recommendations", nil, headers)
		require.Equal(t, http.StatusOK, w.Code)

		var data FeedResponse
		decodeEnvelope(t, w, &data)
		assert.True(t, data.LoginRequired, "header %q", header)
		assert.Equal(t, loginRequiredMessage, data.Message)
		assert.Empty(t, data.Items)

		require.Len(t, env.recommender.requests, 1)
		assert.True(t, env.recommender.requests[0].Guest)
		assert.Empty(t, env.recommender.requests[0].UserID)
	}
}

func TestRecommendations_User(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.recommender.feed = &recommend.Feed{
		Items:       []catalog.Item{sampleItem(1, catalog.KindMovie), sampleItem(2, catalog.KindSeries)},
		CacheHit:    true,
		Candidates:  40,
		GeneratedAt: time.Now(),
	}

	w := env.do(t, http.MethodGet, "/api/v1/recommendations", nil, map[string]string{UserIDHeader: "alice"})
	require.Equal(t, http.StatusOK, w.Code)

	var data FeedResponse
	resp := decodeEnvelope(t, w, &data)
	assert.False(t, data.LoginRequired)
	assert.Len(t, data.Items, 2)
	assert.Equal(t, 40, data.Candidates)
	assert.True(t, resp.Metadata.Cached)
	assert.Equal(t, 2, resp.Metadata.Count)
	assert.Equal(t, cachePrivate, w.Header().Get("Cache-Control"))
	assert.Equal(t, recommend.Request{UserID: "alice"}, env.recommender.requests[0])
}

func TestRecommendations_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid user id", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/v1/recommendations", nil, map[string]string{UserIDHeader: "bad user!"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, ErrCodeInvalidUser, decodeEnvelope(t, w, nil).Error.Code)
		assert.Empty(t, env.recommender.requests)
	})

	t.Run("engine failure", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		env.recommender.err = errors.New("profile store closed")
		w := env.do(t, http.MethodGet, "/api/v1/recommendations", nil, map[string]string{UserIDHeader: "bob"})
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		resp := decodeEnvelope(t, w, nil)
		assert.Equal(t, ErrCodeServiceUnavailable, resp.Error.Code)
		assert.NotContains(t, w.Body.String(), "profile store closed")
	})
}
