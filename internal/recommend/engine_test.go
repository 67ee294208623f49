// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package recommend

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/profile"
	"github.com/tomtom215/cinediscover/internal/recommend/mocks"
)

type fixedRand struct{ v float64 }

func (f fixedRand) Intn(int) int      { return 0 }
func (f fixedRand) Float64() float64 { return f.v }

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type brokenProfiles struct{}

func (brokenProfiles) Profile(context.Context, string) (*profile.Profile, error) {
	return nil, errors.New("store offline")
}

func item(id int, popularity, vote float64) catalog.Item {
	return catalog.Item{ID: id, Kind: catalog.KindMovie, Title: "t", PosterPath: "/p.jpg", Popularity: popularity, VoteAverage: vote}
}

func itemIDs(items []catalog.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

type harness struct {
	catalog  *mocks.MockCatalog
	profiles *profile.MemoryStore
	clock    *fakeClock
	engine   *Engine
}

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		catalog:  mocks.NewMockCatalog(ctrl),
		profiles: profile.NewMemoryStore(),
		clock:    &fakeClock{now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)},
	}
	feedCache := cache.New(cache.WithClock(h.clock.Now))
	h.engine = NewEngine(h.catalog, h.profiles, feedCache, cfg,
		WithRand(fixedRand{v: 0.5}),
		WithClock(h.clock.Now),
		WithLogger(zerolog.Nop()),
	)
	return h
}

func history(ids ...int) []profile.HistoryEntry {
	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	out := make([]profile.HistoryEntry, len(ids))
	for i, id := range ids {
		out[i] = profile.HistoryEntry{ItemID: id, Kind: catalog.KindMovie, WatchedAt: base.Add(time.Duration(i) * time.Hour)}
	}
	return out
}

func genreIs(id string) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		p, ok := x.(url.Values)
		return ok && p.Get("with_genres") == id && p.Get("sort_by") == "popularity.desc"
	})
}

func TestRecommend_GuestMakesNoCalls(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	for _, req := range []Request{{Guest: true, UserID: "u1"}, {}} {
		feed, err := h.engine.Recommend(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, feed.LoginRequired)
		assert.Empty(t, feed.Items)
		assert.NotNil(t, feed.Items)
	}
}

func TestRecommend_EmptyHistoryUsesGenresOnly(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28, 35}})

	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("28")).Return([]catalog.Item{item(1, 100, 7)}, nil)
	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("35")).Return([]catalog.Item{item(2, 100, 8)}, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, itemIDs(feed.Items))
	assert.Equal(t, 2, feed.Candidates)
	assert.False(t, feed.CacheHit)
}

func TestRecommend_ShortHistorySkipsHistoryCalls(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{18}, History: history(10, 11)})

	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("18")).Return([]catalog.Item{item(3, 50, 6)}, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, itemIDs(feed.Items))
}

func TestRecommend_FullSignal(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{
		UserID:            "u1",
		PreferredGenreIDs: []int{28, 35, 18, 99},
		History:           history(10, 11, 12, 13),
	})

	for _, g := range []string{"28", "35", "18"} {
		h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs(g)).Return(nil, nil)
	}
	// The three most recent entries are 13, 12 and 11.
	for _, id := range []int{13, 12, 11} {
		h.catalog.EXPECT().Similar(gomock.Any(), catalog.KindMovie, id, 1).Return([]catalog.Item{item(100+id, 10, 5)}, nil)
		h.catalog.EXPECT().Recommendations(gomock.Any(), catalog.KindMovie, id, 1).Return([]catalog.Item{item(200+id, 10, 6)}, nil)
	}

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, feed.Items, 6)
	assert.Equal(t, 6, feed.Candidates)
}

func TestRecommend_PartialConfigUsesDefaults(t *testing.T) {
	h := newHarness(t, Config{Limit: 5})
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28}, History: history(10, 11)})

	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("28")).Return([]catalog.Item{item(1, 100, 7), item(2, 0, 0)}, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, itemIDs(feed.Items))
	assert.Equal(t, 2, feed.Candidates)
}

func TestConfigWithDefaults(t *testing.T) {
	def := DefaultConfig()

	got := Config{Limit: 5}.withDefaults()
	assert.Equal(t, 5, got.Limit)
	assert.Equal(t, def.MaxGenres, got.MaxGenres)
	assert.Equal(t, def.RecentItems, got.RecentItems)
	assert.Equal(t, def.MinHistory, got.MinHistory)
	assert.Equal(t, def.CacheTTL, got.CacheTTL)
	assert.InDelta(t, def.PopularityWeight, got.PopularityWeight, 1e-9)
	assert.InDelta(t, def.VoteWeight, got.VoteWeight, 1e-9)
	assert.InDelta(t, def.RandomWeight, got.RandomWeight, 1e-9)
	require.NoError(t, got.Validate())

	noRandom := Config{PopularityWeight: 0.5, VoteWeight: 0.5}.withDefaults()
	assert.Zero(t, noRandom.RandomWeight)
}

func TestRecommend_FailedCallContributesNothing(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28, 35}})

	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("28")).Return(nil, errors.New("timeout"))
	h.catalog.EXPECT().Discover(gomock.Any(), catalog.KindMovie, genreIs("35")).Return([]catalog.Item{item(5, 10, 5)}, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, itemIDs(feed.Items))
}

func TestRecommend_FiltersPool(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28}, History: history(7)})

	noPoster := item(8, 500, 9)
	noPoster.PosterPath = ""
	h.catalog.EXPECT().Discover(gomock.Any(), gomock.Any(), gomock.Any()).Return([]catalog.Item{
		item(0, 900, 9), // no id
		item(7, 900, 9), // watched
		noPoster,
		item(9, 10, 5),
		item(9, 999, 10), // duplicate, first occurrence wins
	}, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, feed.Items, 1)
	assert.Equal(t, 9, feed.Items[0].ID)
	assert.InDelta(t, 5.0, feed.Items[0].VoteAverage, 1e-9)
}

func TestRecommend_TakesTopLimit(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28}})

	var pool []catalog.Item
	for i := 1; i <= 30; i++ {
		pool = append(pool, item(i, 0, float64(i)/3))
	}
	h.catalog.EXPECT().Discover(gomock.Any(), gomock.Any(), gomock.Any()).Return(pool, nil)

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, feed.Items, 20)
	assert.Equal(t, 30, feed.Items[0].ID)
	assert.Equal(t, 11, feed.Items[19].ID)
}

func TestRecommend_CacheFreshness(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28}})

	h.catalog.EXPECT().Discover(gomock.Any(), gomock.Any(), gomock.Any()).Return([]catalog.Item{item(1, 10, 5)}, nil).Times(2)

	first, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	require.False(t, first.CacheHit)

	h.clock.Advance(5*time.Hour + 59*time.Minute)
	cached, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, cached.CacheHit)
	assert.Equal(t, itemIDs(first.Items), itemIDs(cached.Items))
	assert.Equal(t, first.GeneratedAt, cached.GeneratedAt)

	h.clock.Advance(2 * time.Minute)
	stale, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
	require.NoError(t, err)
	assert.False(t, stale.CacheHit)
}

func TestRecommend_EmptyFeedNotCached(t *testing.T) {
	h := newHarness(t, DefaultConfig())
	h.profiles.Put(&profile.Profile{UserID: "u1", PreferredGenreIDs: []int{28}})

	h.catalog.EXPECT().Discover(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	for i := 0; i < 2; i++ {
		feed, err := h.engine.Recommend(context.Background(), Request{UserID: "u1"})
		require.NoError(t, err)
		assert.Empty(t, feed.Items)
		assert.False(t, feed.CacheHit)
	}
}

func TestRecommend_UnknownUserGetsEmptyFeed(t *testing.T) {
	h := newHarness(t, DefaultConfig())

	feed, err := h.engine.Recommend(context.Background(), Request{UserID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
	assert.False(t, feed.LoginRequired)
}

func TestRecommend_ProfileErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := NewEngine(mocks.NewMockCatalog(ctrl), brokenProfiles{}, nil, DefaultConfig(), WithLogger(zerolog.Nop()))

	_, err := e.Recommend(context.Background(), Request{UserID: "u1"})
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	cfg := DefaultConfig()

	assert.InDelta(t, 0.4*1+0.4*7+0.2*5, cfg.Score(item(1, 100, 7), 0.5), 1e-9)

	// Popularity is capped at 10 after dividing by 100.
	assert.InDelta(t, cfg.Score(item(1, 1000, 5), 0), cfg.Score(item(1, 50000, 5), 0), 1e-9)

	// Monotonic in popularity below the cap.
	for p := 0.0; p < 1000; p += 37 {
		assert.LessOrEqual(t, cfg.Score(item(1, p, 6), 0.3), cfg.Score(item(1, p+1, 6), 0.3))
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero ttl", func(c *Config) { c.CacheTTL = 0 }},
		{"zero limit", func(c *Config) { c.Limit = 0 }},
		{"negative genres", func(c *Config) { c.MaxGenres = -1 }},
		{"negative weight", func(c *Config) { c.RandomWeight = -0.1 }},
		{"no kinds", func(c *Config) { c.GenreKinds = nil }},
		{"bad kind", func(c *Config) { c.GenreKinds = []catalog.Kind{"anime"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
