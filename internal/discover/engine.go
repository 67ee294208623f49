// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package discover turns a browse Filter into upstream calls and shapes the
// result. Upstream failures become empty results here, so a broken upstream
// produces an empty grid rather than an error.
//
// Dubbed-language requests fall back in two steps when the language filter
// finds nothing on the first page: first to original-language discovery with the same code,
// then, when that is still thin, to a free-text "<code> dubbed" search whose
// results are appended to the fallback results.
package discover

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/logging"
	"github.com/tomtom215/cinediscover/internal/metrics"
	"github.com/tomtom215/cinediscover/internal/shape"
)

// Catalog is the part of the upstream adapter discovery needs.
type Catalog interface {
	Discover(ctx context.Context, kind catalog.Kind, params url.Values) ([]catalog.Item, error)
	Search(ctx context.Context, kind catalog.Kind, query string, page int) ([]catalog.Item, error)
}

// Config tunes the Engine.
type Config struct {
	DefaultPageSize  int
	MaxPageSize      int
	MaxRandomPage    int
	DubbedMinResults int
	RatingVoteFloor  int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize:  20,
		MaxPageSize:      60,
		MaxRandomPage:    10,
		DubbedMinResults: 1,
		RatingVoteFloor:  100,
	}
}

// Result is one shaped discovery page.
type Result struct {
	Items    []catalog.Item `json:"items"`
	Strategy Strategy       `json:"strategy"`
	Page     int            `json:"page"`

	// Fallback names the last dubbed fallback step taken: "", "original" or "search".
	Fallback string `json:"fallback,omitempty"`
}

// Engine executes Filters. Safe for concurrent use.
type Engine struct {
	catalog Catalog
	cfg     Config
	rng     shape.Rand
	logger  zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand replaces the shuffle and random-page RNG.
func WithRand(r shape.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l.With().Str("component", "discover").Logger() }
}

// NewEngine builds an Engine over c.
func NewEngine(c Catalog, cfg Config, opts ...Option) *Engine {
	def := DefaultConfig()
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = def.DefaultPageSize
	}
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
	}
	if cfg.MaxRandomPage < 1 {
		cfg.MaxRandomPage = def.MaxRandomPage
	}
	if cfg.DubbedMinResults < 1 {
		cfg.DubbedMinResults = def.DubbedMinResults
	}

	e := &Engine{
		catalog: c,
		cfg:     cfg,
		rng:     shape.NewLockedRand(0),
		logger:  logging.WithComponent("discover"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan resolves f with the engine's settings without calling upstream.
func (e *Engine) Plan(f Filter) Plan {
	return Resolve(e.normalize(f), e.cfg.RatingVoteFloor)
}

// RandomPage draws a starting page for a new browse session.
func (e *Engine) RandomPage() int {
	return shape.RandomPage(e.rng, e.cfg.MaxRandomPage)
}

// Discover runs f and shapes the result. It never fails; upstream errors are
// logged and yield an empty page.
func (e *Engine) Discover(ctx context.Context, f Filter) *Result {
	f = e.normalize(f)
	plan := Resolve(f, e.cfg.RatingVoteFloor)
	metrics.DiscoverRequests.WithLabelValues(string(plan.Strategy)).Inc()

	res := &Result{Strategy: plan.Strategy, Page: plan.Page}

	var items []catalog.Item
	switch plan.Strategy {
	case StrategySearch:
		items = e.search(ctx, plan.Kind, plan.Query, plan.Page)
	default:
		items = e.discover(ctx, plan.Kind, plan.Params)
		if f.LanguageMode == LanguageDubbed && f.LanguageCode != "" && plan.Page == 1 && len(items) == 0 {
			items, res.Fallback = e.dubbedFallback(ctx, plan, f.LanguageCode)
		}
	}

	res.Items = shape.Apply(items, shape.Options{
		PageSize:      f.PageSize,
		Randomize:     f.Randomize && !(plan.Strategy == StrategyDiscover && f.Sort.Strict()),
		RequirePoster: f.RequirePoster,
	}, e.rng)
	return res
}

// dubbedFallback runs after the first-page with_language attempt came back empty.
func (e *Engine) dubbedFallback(ctx context.Context, plan Plan, code string) ([]catalog.Item, string) {
	metrics.DubbedFallbacks.WithLabelValues("original").Inc()
	items := e.discover(ctx, plan.Kind, originalLanguageFallback(plan.Params, code))
	if len(items) >= e.cfg.DubbedMinResults {
		return items, "original"
	}

	metrics.DubbedFallbacks.WithLabelValues("search").Inc()
	found := e.search(ctx, plan.Kind, code+" dubbed", plan.Page)
	merged := make([]catalog.Item, 0, len(items)+len(found))
	merged = append(merged, items...)
	merged = append(merged, found...)
	return shape.DedupeByID(merged), "search"
}

func (e *Engine) discover(ctx context.Context, kind catalog.Kind, params url.Values) []catalog.Item {
	items, err := e.catalog.Discover(ctx, kind, params)
	if err != nil {
		e.logger.Warn().Err(err).Str("kind", kind.String()).Msg("discovery call failed, serving empty page")
		return []catalog.Item{}
	}
	return items
}

func (e *Engine) search(ctx context.Context, kind catalog.Kind, query string, page int) []catalog.Item {
	items, err := e.catalog.Search(ctx, kind, query, page)
	if err != nil {
		e.logger.Warn().Err(err).Str("kind", kind.String()).Str("query", query).Msg("search call failed, serving empty page")
		return []catalog.Item{}
	}
	return items
}

func (e *Engine) normalize(f Filter) Filter {
	if !f.Kind.Valid() {
		f.Kind = catalog.KindMovie
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = e.cfg.DefaultPageSize
	}
	if f.PageSize > e.cfg.MaxPageSize {
		f.PageSize = e.cfg.MaxPageSize
	}
	if f.LanguageCode != "" {
		code, err := catalog.LanguageCode(f.LanguageCode)
		if err != nil {
			e.logger.Debug().Str("language", f.LanguageCode).Msg("ignoring unparseable language filter")
			f.LanguageMode, f.LanguageCode = LanguageNone, ""
		} else {
			f.LanguageCode = code
		}
	}
	if f.LanguageMode == LanguageNone {
		f.LanguageCode = ""
	}
	return f
}
