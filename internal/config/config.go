// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package config loads Cinediscover configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence.
package config

import "time"

// Config is the root configuration.
type Config struct {
	TMDB      TMDBConfig      `koanf:"tmdb"`
	Cache     CacheConfig     `koanf:"cache"`
	Discover  DiscoverConfig  `koanf:"discover"`
	Recommend RecommendConfig `koanf:"recommend"`
	Storage   StorageConfig   `koanf:"storage"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// TMDBConfig configures the upstream catalog adapter.
type TMDBConfig struct {
	// APIKey is either a v3 API key or a v4 read access token. Required.
	APIKey string `koanf:"api_key"`

	BaseURL  string        `koanf:"base_url"`
	ImageURL string        `koanf:"image_url"`
	Language string        `koanf:"language"`
	Timeout  time.Duration `koanf:"timeout"`

	// RateLimit is the client-side request budget per second; RateBurst the bucket size.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`

	// Breaker settings for the upstream circuit breaker.
	BreakerMinRequests  uint32        `koanf:"breaker_min_requests"`
	BreakerFailureRatio float64       `koanf:"breaker_failure_ratio"`
	BreakerOpenTimeout  time.Duration `koanf:"breaker_open_timeout"`
}

// CacheConfig holds TTLs for cached upstream responses.
type CacheConfig struct {
	DetailsTTL time.Duration `koanf:"details_ttl"`
	ListTTL    time.Duration `koanf:"list_ttl"`
	GenresTTL  time.Duration `koanf:"genres_ttl"`

	// Durable enables the badger-backed store behind the in-memory map.
	Durable bool `koanf:"durable"`
}

// DiscoverConfig tunes the filter resolution engine.
type DiscoverConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`

	// MaxRandomPage bounds the random-page selector.
	MaxRandomPage int `koanf:"max_random_page"`

	// DubbedMinResults is the result count under which the dubbed fallback
	// chain escalates to free-text search.
	DubbedMinResults int `koanf:"dubbed_min_results"`

	// RatingVoteFloor is sent as vote_count.gte on rating-sorted discovery.
	RatingVoteFloor int `koanf:"rating_vote_floor"`

	// Seed fixes the shuffle and random-page RNG. Zero means time-seeded.
	Seed int64 `koanf:"seed"`
}

// RecommendConfig tunes the recommendation scoring engine.
type RecommendConfig struct {
	CacheTTL       time.Duration `koanf:"cache_ttl"`
	Limit          int           `koanf:"limit"`
	MaxGenres      int           `koanf:"max_genres"`
	RecentItems    int           `koanf:"recent_items"`
	MinHistory     int           `koanf:"min_history"`
	CallTimeout    time.Duration `koanf:"call_timeout"`
	PopularityW    float64       `koanf:"popularity_weight"`
	VoteW          float64       `koanf:"vote_weight"`
	RandomW        float64       `koanf:"random_weight"`
	Seed           int64         `koanf:"seed"`
	CandidateKinds []string      `koanf:"candidate_kinds"`
}

// StorageConfig locates the badger database holding the durable cache and profiles.
type StorageConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	RateLimitReqs   int           `koanf:"rate_limit_reqs"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns the built-in defaults, the lowest configuration layer.
func defaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:             "https://api.themoviedb.org/3",
			ImageURL:            "https://image.tmdb.org/t/p",
			Language:            "en-US",
			Timeout:             5 * time.Second,
			RateLimit:           40,
			RateBurst:           20,
			BreakerMinRequests:  10,
			BreakerFailureRatio: 0.6,
			BreakerOpenTimeout:  30 * time.Second,
		},
		Cache: CacheConfig{
			DetailsTTL: 15 * time.Minute,
			ListTTL:    10 * time.Minute,
			GenresTTL:  24 * time.Hour,
			Durable:    true,
		},
		Discover: DiscoverConfig{
			DefaultPageSize:  20,
			MaxPageSize:      60,
			MaxRandomPage:    10,
			DubbedMinResults: 1,
			RatingVoteFloor:  100,
		},
		Recommend: RecommendConfig{
			CacheTTL:       6 * time.Hour,
			Limit:          20,
			MaxGenres:      3,
			RecentItems:    3,
			MinHistory:     3,
			CallTimeout:    10 * time.Second,
			PopularityW:    0.4,
			VoteW:          0.4,
			RandomW:        0.2,
			CandidateKinds: []string{"movie"},
		},
		Storage: StorageConfig{
			Path:       "/data/cinediscover",
			GCInterval: 10 * time.Minute,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
