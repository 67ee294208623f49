// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/discover"
	"github.com/tomtom215/cinediscover/internal/profile"
	"github.com/tomtom215/cinediscover/internal/recommend"
	"github.com/tomtom215/cinediscover/internal/tmdb"
)

type fakeDiscoverer struct {
	mu      sync.Mutex
	filters []discover.Filter
	result  *discover.Result
	page    int
}

func (f *fakeDiscoverer) Discover(_ context.Context, filter discover.Filter) *discover.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.result == nil {
		return &discover.Result{Items: []catalog.Item{}, Strategy: discover.StrategyDiscover, Page: filter.Page}
	}
	return f.result
}

func (f *fakeDiscoverer) RandomPage() int {
	if f.page == 0 {
		return 1
	}
	return f.page
}

func (f *fakeDiscoverer) lastFilter(t *testing.T) discover.Filter {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.filters) == 0 {
		t.Fatal("Discover was not called")
	}
	return f.filters[len(f.filters)-1]
}

type fakeRecommender struct {
	feed     *recommend.Feed
	err      error
	requests []recommend.Request
}

func (f *fakeRecommender) Recommend(_ context.Context, req recommend.Request) (*recommend.Feed, error) {
	f.requests = append(f.requests, req)
	if req.Guest {
		return &recommend.Feed{Items: []catalog.Item{}, LoginRequired: true, GeneratedAt: time.Now()}, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	if f.feed == nil {
		return &recommend.Feed{Items: []catalog.Item{}, GeneratedAt: time.Now()}, nil
	}
	return f.feed, nil
}

type fakeCatalog struct {
	details      map[int]*tmdb.Details
	genres       []catalog.Genre
	genresErr    error
	translations []tmdb.Translation
	state        string
}

var errFakeUpstream = errors.New("upstream down")

func (f *fakeCatalog) Details(_ context.Context, _ catalog.Kind, id int) (*tmdb.Details, error) {
	if d, ok := f.details[id]; ok {
		return d, nil
	}
	return nil, errFakeUpstream
}

func (f *fakeCatalog) Genres(_ context.Context, _ catalog.Kind) ([]catalog.Genre, error) {
	return f.genres, f.genresErr
}

func (f *fakeCatalog) Translations(_ context.Context, _ catalog.Kind, _ int) ([]tmdb.Translation, error) {
	if f.translations == nil {
		return nil, errFakeUpstream
	}
	return f.translations, nil
}

func (f *fakeCatalog) HasTranslation(_ context.Context, _ catalog.Kind, _ int, lang string) (bool, error) {
	if f.translations == nil {
		return false, errFakeUpstream
	}
	for _, t := range f.translations {
		if strings.EqualFold(t.Language, lang) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCatalog) ImageURL(path, size string) string {
	if path == "" {
		return ""
	}
	return "https://img.test/" + size + path
}

func (f *fakeCatalog) BreakerState() string {
	if f.state == "" {
		return "closed"
	}
	return f.state
}

type testEnv struct {
	discoverer  *fakeDiscoverer
	recommender *fakeRecommender
	catalog     *fakeCatalog
	profiles    *profile.MemoryStore
	server      http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		discoverer:  &fakeDiscoverer{},
		recommender: &fakeRecommender{},
		catalog:     &fakeCatalog{details: map[int]*tmdb.Details{}},
		profiles:    profile.NewMemoryStore(),
	}
	h := NewHandler(HandlerDeps{
		Discoverer:     env.discoverer,
		Recommender:    env.recommender,
		Catalog:        env.catalog,
		Profiles:       env.profiles,
		RequestTimeout: time.Second,
	})
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	env.server = NewRouter(h, NewChiMiddleware(cfg)).SetupChi()
	return env
}

func (env *testEnv) do(t *testing.T, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	env.server.ServeHTTP(w, req)
	return w
}

// decodeEnvelope unmarshals the response envelope and re-decodes Data into dst.
func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v (body %q)", err, w.Body.String())
	}
	if dst != nil && resp.Data != nil {
		raw, err := json.Marshal(resp.Data)
		if err != nil {
			t.Fatalf("Failed to re-marshal data: %v", err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
	}
	return resp
}

func sampleItem(id int, kind catalog.Kind) catalog.Item {
	return catalog.Item{
		ID:          id,
		Kind:        kind,
		Title:       "Title",
		PosterPath:  "/p.jpg",
		GenreIDs:    []int{28},
		Popularity:  50,
		VoteAverage: 7.5,
	}
}
