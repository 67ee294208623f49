// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package tmdb is the adapter to the upstream catalog API (The Movie Database).
//
// Every request carries the configured credential and locale, is bounded by
// a fixed timeout and is never retried. Methods return (value, error); all
// failures wrap ErrUpstream, and an empty result is an empty slice with a nil
// error. Callers that treat failure as "no results" do so explicitly.
//
// Calls go through a client-side rate limiter and a circuit breaker; while
// the breaker is open calls fail fast with ErrUpstream. Detail, genre and
// list responses are cached when a cache is configured.
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/metrics"
)

const (
	DefaultBaseURL  = "https://api.themoviedb.org/3"
	DefaultImageURL = "https://image.tmdb.org/t/p"
	DefaultLanguage = "en-US"
	DefaultTimeout  = 5 * time.Second

	// maxErrorBodySize bounds how much of an error body is read.
	maxErrorBodySize = 64 * 1024
)

// Config configures a Client.
type Config struct {
	// APIKey is a v3 API key (sent as api_key) or a v4 read access token
	// (sent as a bearer token). Required.
	APIKey   string
	BaseURL  string
	ImageURL string
	Language string
	Timeout  time.Duration

	// RateLimit is requests per second; zero disables limiting.
	RateLimit float64
	RateBurst int

	DetailsTTL time.Duration
	ListTTL    time.Duration
	GenresTTL  time.Duration

	BreakerMinRequests  uint32
	BreakerFailureRatio float64
	BreakerOpenTimeout  time.Duration
}

// Client talks to the upstream catalog. Safe for concurrent use.
type Client struct {
	cfg        Config
	bearer     bool
	httpClient *http.Client
	cache      *cache.Cache
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[[]byte]
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its Timeout is overwritten by Config.Timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables response caching.
func WithCache(cc *cache.Cache) Option {
	return func(c *Client) { c.cache = cc }
}

// WithLogger sets the logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l.With().Str("component", "tmdb").Logger() }
}

// New builds a Client. It fails when cfg has no credential.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}
	applyDefaults(&cfg)

	c := &Client{
		cfg:        cfg,
		bearer:     isBearerToken(cfg.APIKey),
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.httpClient.Timeout = cfg.Timeout

	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	} else {
		c.limiter = rate.NewLimiter(rate.Inf, 0)
	}
	c.cb = newBreaker(&cfg, c.logger)
	return c, nil
}

func applyDefaults(cfg *Config) {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ImageURL == "" {
		cfg.ImageURL = DefaultImageURL
	}
	cfg.ImageURL = strings.TrimRight(cfg.ImageURL, "/")
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateBurst < 1 {
		cfg.RateBurst = 1
	}
	if cfg.DetailsTTL <= 0 {
		cfg.DetailsTTL = 15 * time.Minute
	}
	if cfg.ListTTL <= 0 {
		cfg.ListTTL = 10 * time.Minute
	}
	if cfg.GenresTTL <= 0 {
		cfg.GenresTTL = 24 * time.Hour
	}
	if cfg.BreakerMinRequests == 0 {
		cfg.BreakerMinRequests = 10
	}
	if cfg.BreakerFailureRatio <= 0 {
		cfg.BreakerFailureRatio = 0.6
	}
	if cfg.BreakerOpenTimeout <= 0 {
		cfg.BreakerOpenTimeout = 30 * time.Second
	}
}

// isBearerToken recognizes v4 read access tokens, which are JWTs.
func isBearerToken(key string) bool {
	return strings.HasPrefix(key, "eyJ") && strings.Count(key, ".") == 2
}

// get performs one GET and decodes the body into dst. endpoint labels metrics.
func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, dst interface{}) error {
	start := time.Now()

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, path, params)
	})
	if err != nil {
		outcome := "error"
		switch {
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			outcome = "breaker_open"
		case errors.Is(err, context.DeadlineExceeded) || isTimeout(err):
			outcome = "timeout"
		}
		metrics.RecordUpstream(endpoint, outcome, time.Since(start))
		if !errors.Is(err, ErrUpstream) {
			err = fmt.Errorf("%w: %s: %w", ErrUpstream, endpoint, err)
		}
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		metrics.RecordUpstream(endpoint, "error", time.Since(start))
		return fmt.Errorf("%w: decode %s response: %w", ErrUpstream, endpoint, err)
	}
	metrics.RecordUpstream(endpoint, "ok", time.Since(start))
	return nil
}

func (c *Client) do(ctx context.Context, path string, params url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	if q.Get("language") == "" {
		q.Set("language", c.cfg.Language)
	}
	if !c.bearer {
		q.Set("api_key", c.cfg.APIKey)
	}

	reqURL := c.cfg.BaseURL + path + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.bearer {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newStatusError(resp.StatusCode, readBodyForError(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func newStatusError(status int, body []byte) *StatusError {
	var envelope struct {
		StatusCode    int    `json:"status_code"`
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusMessage != "" {
		return &StatusError{Status: status, Code: envelope.StatusCode, Message: envelope.StatusMessage}
	}
	return &StatusError{Status: status, Message: strings.TrimSpace(string(body))}
}

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
