// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"context"
	"time"

	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/discover"
	"github.com/tomtom215/cinediscover/internal/profile"
	"github.com/tomtom215/cinediscover/internal/recommend"
	"github.com/tomtom215/cinediscover/internal/tmdb"
)

// Discoverer is satisfied by *discover.Engine.
type Discoverer interface {
	Discover(ctx context.Context, f discover.Filter) *discover.Result
	RandomPage() int
}

// Recommender is satisfied by *recommend.Engine.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Feed, error)
}

// Catalog is the part of *tmdb.Client the handlers call directly.
type Catalog interface {
	Details(ctx context.Context, kind catalog.Kind, id int) (*tmdb.Details, error)
	Genres(ctx context.Context, kind catalog.Kind) ([]catalog.Genre, error)
	Translations(ctx context.Context, kind catalog.Kind, id int) ([]tmdb.Translation, error)
	HasTranslation(ctx context.Context, kind catalog.Kind, id int, lang string) (bool, error)
	ImageURL(path, size string) string
	BreakerState() string
}

// Handler holds the dependencies of every endpoint.
type Handler struct {
	discoverer  Discoverer
	recommender Recommender
	catalog     Catalog
	profiles    profile.Store
	cache       *cache.Cache
	startTime   time.Time

	// requestTimeout bounds the engine work behind one request.
	requestTimeout time.Duration
}

// HandlerDeps groups the constructor arguments of NewHandler.
type HandlerDeps struct {
	Discoverer  Discoverer
	Recommender Recommender
	Catalog     Catalog
	Profiles    profile.Store
	Cache       *cache.Cache // optional, reported by /health

	RequestTimeout time.Duration
}

// NewHandler creates a Handler.
func NewHandler(deps HandlerDeps) *Handler {
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Handler{
		discoverer:     deps.Discoverer,
		recommender:    deps.Recommender,
		catalog:        deps.Catalog,
		profiles:       deps.Profiles,
		cache:          deps.Cache,
		startTime:      time.Now(),
		requestTimeout: timeout,
	}
}

// ItemView is a catalog item as rendered to clients: the item plus resolved
// image URLs and genre names.
type ItemView struct {
	catalog.Item

	PosterURL   string   `json:"poster_url,omitempty"`
	BackdropURL string   `json:"backdrop_url,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

func (h *Handler) view(it catalog.Item) ItemView {
	v := ItemView{
		Item:        it,
		PosterURL:   h.catalog.ImageURL(it.PosterPath, tmdb.PosterMedium),
		BackdropURL: h.catalog.ImageURL(it.BackdropPath, tmdb.BackdropLarge),
	}
	for _, id := range it.GenreIDs {
		if name := catalog.GenreName(it.Kind, id); name != "" {
			v.Genres = append(v.Genres, name)
		}
	}
	return v
}

func (h *Handler) views(items []catalog.Item) []ItemView {
	out := make([]ItemView, len(items))
	for i, it := range items {
		out[i] = h.view(it)
	}
	return out
}
