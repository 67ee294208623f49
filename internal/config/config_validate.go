// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// Validate checks that required configuration is present and coherent. It
// canonicalizes the upstream locale in place.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateDiscover(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateTMDB() error {
	if strings.TrimSpace(c.TMDB.APIKey) == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}
	u, err := url.Parse(c.TMDB.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("TMDB_BASE_URL must be an absolute URL, got %q", c.TMDB.BaseURL)
	}
	locale, err := catalog.Locale(c.TMDB.Language)
	if err != nil {
		return fmt.Errorf("TMDB_LANGUAGE must be a locale such as en-US: %w", err)
	}
	c.TMDB.Language = locale
	if c.TMDB.Timeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive, got %v", c.TMDB.Timeout)
	}
	if c.TMDB.RateLimit < 0 {
		return fmt.Errorf("TMDB_RATE_LIMIT must not be negative")
	}
	if c.TMDB.BreakerFailureRatio <= 0 || c.TMDB.BreakerFailureRatio > 1 {
		return fmt.Errorf("tmdb.breaker_failure_ratio must be in (0,1], got %v", c.TMDB.BreakerFailureRatio)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.DetailsTTL <= 0 || c.Cache.ListTTL <= 0 || c.Cache.GenresTTL <= 0 {
		return fmt.Errorf("cache TTLs must be positive")
	}
	return nil
}

func (c *Config) validateDiscover() error {
	d := c.Discover
	if d.DefaultPageSize < 1 {
		return fmt.Errorf("discover.default_page_size must be at least 1")
	}
	if d.MaxPageSize < d.DefaultPageSize {
		return fmt.Errorf("discover.max_page_size (%d) must be >= default_page_size (%d)", d.MaxPageSize, d.DefaultPageSize)
	}
	if d.MaxRandomPage < 1 || d.MaxRandomPage > 500 {
		return fmt.Errorf("discover.max_random_page must be between 1 and 500, got %d", d.MaxRandomPage)
	}
	if d.DubbedMinResults < 1 {
		return fmt.Errorf("discover.dubbed_min_results must be at least 1")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.CacheTTL <= 0 {
		return fmt.Errorf("recommend.cache_ttl must be positive")
	}
	if r.Limit < 1 {
		return fmt.Errorf("recommend.limit must be at least 1")
	}
	if r.MaxGenres < 0 || r.RecentItems < 0 || r.MinHistory < 0 {
		return fmt.Errorf("recommend candidate limits must not be negative")
	}
	sum := r.PopularityW + r.VoteW + r.RandomW
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("recommend weights must sum to 1, got %.3f", sum)
	}
	for _, k := range r.CandidateKinds {
		switch strings.ToLower(k) {
		case "movie", "series", "tv":
		default:
			return fmt.Errorf("recommend.candidate_kinds: unknown kind %q", k)
		}
	}
	return nil
}

func (c *Config) validateStorage() error {
	if !c.Storage.InMemory && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required unless STORAGE_IN_MEMORY=true")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
