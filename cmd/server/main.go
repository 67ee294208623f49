// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/cinediscover/docs" // Import generated swagger docs
	"github.com/tomtom215/cinediscover/internal/api"
	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/config"
	"github.com/tomtom215/cinediscover/internal/discover"
	"github.com/tomtom215/cinediscover/internal/logging"
	"github.com/tomtom215/cinediscover/internal/profile"
	"github.com/tomtom215/cinediscover/internal/recommend"
	"github.com/tomtom215/cinediscover/internal/shape"
	"github.com/tomtom215/cinediscover/internal/storage"
	"github.com/tomtom215/cinediscover/internal/supervisor"
	"github.com/tomtom215/cinediscover/internal/supervisor/services"
	"github.com/tomtom215/cinediscover/internal/tmdb"
)

// Durable key prefixes; profiles use their own "profile:" prefix.
const (
	upstreamCachePrefix = "tmdb:"
	feedCachePrefix     = "feed:"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger still has its defaults here.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("storage_path", cfg.Storage.Path).
		Bool("storage_in_memory", cfg.Storage.InMemory).
		Bool("durable_cache", cfg.Cache.Durable).
		Str("tmdb_language", cfg.TMDB.Language).
		Msg("Starting Cinediscover")

	db, err := storage.Open(storage.Config{
		Path:     cfg.Storage.Path,
		InMemory: cfg.Storage.InMemory,
	}, logging.WithComponent("storage"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing storage")
		}
	}()

	upstreamCache := newCache(cfg, db, upstreamCachePrefix)
	feedCache := newCache(cfg, db, feedCachePrefix)

	client, err := tmdb.New(tmdb.Config{
		APIKey:              cfg.TMDB.APIKey,
		BaseURL:             cfg.TMDB.BaseURL,
		ImageURL:            cfg.TMDB.ImageURL,
		Language:            cfg.TMDB.Language,
		Timeout:             cfg.TMDB.Timeout,
		RateLimit:           cfg.TMDB.RateLimit,
		RateBurst:           cfg.TMDB.RateBurst,
		DetailsTTL:          cfg.Cache.DetailsTTL,
		ListTTL:             cfg.Cache.ListTTL,
		GenresTTL:           cfg.Cache.GenresTTL,
		BreakerMinRequests:  cfg.TMDB.BreakerMinRequests,
		BreakerFailureRatio: cfg.TMDB.BreakerFailureRatio,
		BreakerOpenTimeout:  cfg.TMDB.BreakerOpenTimeout,
	}, tmdb.WithCache(upstreamCache), tmdb.WithLogger(logging.WithComponent("tmdb")))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create TMDB client")
	}

	discoverOpts := []discover.Option{discover.WithLogger(logging.WithComponent("discover"))}
	if cfg.Discover.Seed != 0 {
		discoverOpts = append(discoverOpts, discover.WithRand(shape.NewLockedRand(cfg.Discover.Seed)))
	}
	discoverer := discover.NewEngine(client, discover.Config{
		DefaultPageSize:  cfg.Discover.DefaultPageSize,
		MaxPageSize:      cfg.Discover.MaxPageSize,
		MaxRandomPage:    cfg.Discover.MaxRandomPage,
		DubbedMinResults: cfg.Discover.DubbedMinResults,
		RatingVoteFloor:  cfg.Discover.RatingVoteFloor,
	}, discoverOpts...)

	profiles := profile.NewBadgerStore(db.DB)

	recommendOpts := []recommend.Option{recommend.WithLogger(logging.WithComponent("recommend"))}
	if cfg.Recommend.Seed != 0 {
		recommendOpts = append(recommendOpts, recommend.WithRand(shape.NewLockedRand(cfg.Recommend.Seed)))
	}
	recommender := recommend.NewEngine(client, profiles, feedCache, recommendConfig(cfg), recommendOpts...)

	handler := api.NewHandler(api.HandlerDeps{
		Discoverer:     discoverer,
		Recommender:    recommender,
		Catalog:        client,
		Profiles:       profiles,
		Cache:          upstreamCache,
		RequestTimeout: cfg.Server.WriteTimeout,
	})

	mwConfig := api.DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Server.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Server.RateLimitReqs
	mwConfig.RateLimitWindow = cfg.Server.RateLimitWindow
	router := api.NewRouter(handler, api.NewChiMiddleware(mwConfig))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	maintenanceLogger := logging.WithComponent("maintenance")
	tree.AddDataService(services.NewMaintenanceService(
		multiSweeper{upstreamCache, feedCache}, db,
		services.MaintenanceConfig{GCInterval: cfg.Storage.GCInterval},
		maintenanceLogger,
	))
	httpLogger := logging.WithComponent("http")
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, httpLogger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Cinediscover stopped")
}

// newCache builds a response cache, backed by BadgerDB under prefix when the
// durable layer is enabled.
func newCache(cfg *config.Config, db *storage.DB, prefix string) *cache.Cache {
	opts := []cache.Option{cache.WithLogger(logging.WithComponent("cache"))}
	if cfg.Cache.Durable {
		opts = append(opts, cache.WithStore(cache.NewBadgerStore(db.DB, prefix)))
	}
	return cache.New(opts...)
}

func recommendConfig(cfg *config.Config) recommend.Config {
	rc := recommend.Config{
		CacheTTL:         cfg.Recommend.CacheTTL,
		Limit:            cfg.Recommend.Limit,
		MaxGenres:        cfg.Recommend.MaxGenres,
		RecentItems:      cfg.Recommend.RecentItems,
		MinHistory:       cfg.Recommend.MinHistory,
		CallTimeout:      cfg.Recommend.CallTimeout,
		PopularityWeight: cfg.Recommend.PopularityW,
		VoteWeight:       cfg.Recommend.VoteW,
		RandomWeight:     cfg.Recommend.RandomW,
	}
	for _, k := range cfg.Recommend.CandidateKinds {
		// Validated by config.Load.
		if kind, err := catalog.ParseKind(k); err == nil {
			rc.GenreKinds = append(rc.GenreKinds, kind)
		}
	}
	return rc
}

// multiSweeper sweeps several caches in one maintenance tick.
type multiSweeper []*cache.Cache

func (m multiSweeper) Sweep() int {
	n := 0
	for _, c := range m {
		n += c.Sweep()
	}
	return n
}
