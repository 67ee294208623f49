// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package recommend builds a personalized feed for a signed-in user.
//
// Candidates come from up to MaxGenres genre discoveries and, once the user
// has MinHistory watched items, from the similar and recommended-from-item
// lists of the RecentItems most recent ones. All candidate calls run
// concurrently and the engine waits for every one of them; a failed call
// contributes nothing. The pool is filtered, scored with
//
//	score = 0.4*min(popularity/100, 10) + 0.4*voteAverage + 0.2*rand[0,10)
//
// and the best Limit items are kept. Non-empty feeds are cached per user for
// CacheTTL.
//
//	engine := recommend.NewEngine(client, profiles, c, recommend.DefaultConfig())
//	feed, err := engine.Recommend(ctx, recommend.Request{UserID: "42"})
package recommend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"

	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/logging"
	"github.com/tomtom215/cinediscover/internal/metrics"
	"github.com/tomtom215/cinediscover/internal/profile"
	"github.com/tomtom215/cinediscover/internal/shape"
)

//go:generate mockgen -source=engine.go -destination=mocks/mock_catalog.go -package=mocks Catalog

// Catalog is the part of the upstream adapter the engine calls for candidates.
type Catalog interface {
	Discover(ctx context.Context, kind catalog.Kind, params url.Values) ([]catalog.Item, error)
	Similar(ctx context.Context, kind catalog.Kind, id, page int) ([]catalog.Item, error)
	Recommendations(ctx context.Context, kind catalog.Kind, id, page int) ([]catalog.Item, error)
}

// Request identifies who the feed is for.
type Request struct {
	UserID string
	Guest  bool
}

// Feed is a ranked recommendation list.
type Feed struct {
	Items []catalog.Item `json:"items"`

	// LoginRequired is set for guests; Items is then empty.
	LoginRequired bool `json:"login_required,omitempty"`

	CacheHit    bool      `json:"cache_hit"`
	Candidates  int       `json:"candidates"`
	GeneratedAt time.Time `json:"generated_at"`
}

// cacheEntry is the persisted form of a feed.
type cacheEntry struct {
	CreatedAt time.Time      `json:"created_at"`
	Items     []catalog.Item `json:"items"`
}

// Engine builds feeds. Safe for concurrent use.
type Engine struct {
	catalog  Catalog
	profiles profile.Reader
	cache    *cache.Cache
	cfg      Config
	rng      shape.Rand
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the scoring RNG.
func WithRand(r shape.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithClock replaces time.Now for cache freshness and GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger sets the logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l.With().Str("component", "recommend").Logger() }
}

// NewEngine builds an Engine. A nil cache disables feed caching. Unset fields
// of cfg fall back to DefaultConfig; see Config.withDefaults.
func NewEngine(c Catalog, profiles profile.Reader, feedCache *cache.Cache, cfg Config, opts ...Option) *Engine {
	cfg = cfg.withDefaults()

	e := &Engine{
		catalog:  c,
		profiles: profiles,
		cache:    feedCache,
		cfg:      cfg,
		rng:      shape.NewLockedRand(0),
		now:      time.Now,
		logger:   logging.WithComponent("recommend"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CacheKey is the feed cache key for userID.
func CacheKey(userID string) string {
	return "reco_" + userID
}

// Recommend returns the feed for req. Guests get LoginRequired without any
// upstream call. The only error is a failing profile store; upstream
// failures shrink the feed instead.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Feed, error) {
	start := time.Now()

	if req.Guest || req.UserID == "" {
		metrics.RecordRecommendation("guest", 0, 0)
		return &Feed{Items: []catalog.Item{}, LoginRequired: true, GeneratedAt: e.now()}, nil
	}

	logger := e.logger.With().Str("user_id", req.UserID).Logger()

	if feed, ok := e.cached(req.UserID); ok {
		logger.Debug().Int("items", len(feed.Items)).Msg("serving cached recommendations")
		metrics.RecordRecommendation("cache", 0, 0)
		return feed, nil
	}

	p, err := e.profiles.Profile(ctx, req.UserID)
	if errors.Is(err, profile.ErrNotFound) {
		p = &profile.Profile{UserID: req.UserID}
	} else if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	pooled := e.candidates(ctx, p, logger)
	items := e.cfg.rank(filterPool(pooled, p.WatchedIDs()), e.rng, e.cfg.Limit)

	now := e.now()
	feed := &Feed{Items: items, Candidates: len(pooled), GeneratedAt: now}

	source := "computed"
	if len(items) == 0 {
		source = "empty"
	} else if e.cache != nil {
		e.cache.Set(CacheKey(req.UserID), cacheEntry{CreatedAt: now, Items: items}, e.cfg.CacheTTL)
	}

	metrics.RecordRecommendation(source, len(pooled), time.Since(start))
	logger.Info().
		Int("candidates", len(pooled)).
		Int("items", len(items)).
		Dur("duration", time.Since(start)).
		Msg("built recommendations")

	return feed, nil
}

func (e *Engine) cached(userID string) (*Feed, bool) {
	if e.cache == nil {
		return nil, false
	}
	var entry cacheEntry
	if !e.cache.Get(CacheKey(userID), &entry) {
		return nil, false
	}
	if len(entry.Items) == 0 || e.now().Sub(entry.CreatedAt) >= e.cfg.CacheTTL {
		return nil, false
	}
	return &Feed{Items: entry.Items, CacheHit: true, GeneratedAt: entry.CreatedAt}, true
}

// candidateCall is one upstream fetch feeding the pool.
type candidateCall struct {
	name  string
	fetch func(ctx context.Context) ([]catalog.Item, error)
}

// plan lists the candidate calls for p in pool order: genres first, then
// similar and recommended-from-item per recent history entry.
func (e *Engine) plan(p *profile.Profile) []candidateCall {
	var calls []candidateCall

	genres := p.PreferredGenreIDs
	if len(genres) > e.cfg.MaxGenres {
		genres = genres[:e.cfg.MaxGenres]
	}
	for _, g := range genres {
		for _, kind := range e.cfg.GenreKinds {
			params := url.Values{}
			params.Set("with_genres", strconv.Itoa(g))
			params.Set("sort_by", "popularity.desc")
			params.Set("page", "1")
			calls = append(calls, candidateCall{
				name:  "genre_" + strconv.Itoa(g) + "_" + string(kind),
				fetch: func(ctx context.Context) ([]catalog.Item, error) { return e.catalog.Discover(ctx, kind, params) },
			})
		}
	}

	if len(p.History) < e.cfg.MinHistory {
		return calls
	}
	for _, h := range p.RecentHistory(e.cfg.RecentItems) {
		kind, id := h.Kind, h.ItemID
		if !kind.Valid() {
			kind = catalog.KindMovie
		}
		calls = append(calls,
			candidateCall{
				name:  "similar_" + strconv.Itoa(id),
				fetch: func(ctx context.Context) ([]catalog.Item, error) { return e.catalog.Similar(ctx, kind, id, 1) },
			},
			candidateCall{
				name:  "recommendations_" + strconv.Itoa(id),
				fetch: func(ctx context.Context) ([]catalog.Item, error) { return e.catalog.Recommendations(ctx, kind, id, 1) },
			},
		)
	}
	return calls
}

// candidates runs every planned call concurrently and waits for all of them.
// Results are merged in plan order so deduplication is deterministic.
func (e *Engine) candidates(ctx context.Context, p *profile.Profile, logger zerolog.Logger) []catalog.Item {
	calls := e.plan(p)
	if len(calls) == 0 {
		return nil
	}

	results := make([][]catalog.Item, len(calls))
	wp := pool.New().WithMaxGoroutines(len(calls))
	for i, call := range calls {
		wp.Go(func() {
			callCtx := ctx
			if e.cfg.CallTimeout > 0 {
				var cancel context.CancelFunc
				callCtx, cancel = context.WithTimeout(ctx, e.cfg.CallTimeout)
				defer cancel()
			}
			items, err := call.fetch(callCtx)
			if err != nil {
				logger.Warn().Err(err).Str("call", call.name).Msg("candidate call failed")
				return
			}
			results[i] = items
		})
	}
	wp.Wait()

	var merged []catalog.Item
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
