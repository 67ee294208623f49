// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package recommend

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// Config tunes candidate generation and scoring.
type Config struct {
	// CacheTTL is how long a non-empty feed is served verbatim.
	CacheTTL time.Duration

	// Limit caps the feed length.
	Limit int

	// MaxGenres caps the genre discovery calls per feed.
	MaxGenres int

	// RecentItems is how many recently watched items seed similar and
	// recommended-from-item calls. MinHistory is the history length below
	// which those calls are skipped.
	RecentItems int
	MinHistory  int

	// CallTimeout bounds each candidate call. Zero leaves only the caller's deadline.
	CallTimeout time.Duration

	PopularityWeight float64
	VoteWeight       float64
	RandomWeight     float64

	// GenreKinds are the content kinds queried per preferred genre.
	GenreKinds []catalog.Kind
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		CacheTTL:         6 * time.Hour,
		Limit:            20,
		MaxGenres:        3,
		RecentItems:      3,
		MinHistory:       3,
		CallTimeout:      10 * time.Second,
		PopularityWeight: 0.4,
		VoteWeight:       0.4,
		RandomWeight:     0.2,
		GenreKinds:       []catalog.Kind{catalog.KindMovie},
	}
}

// withDefaults fills zero-valued fields from DefaultConfig. The weights are
// taken as a set: they are replaced only when all three are zero, so a single
// zero weight still switches that term off.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
	if c.Limit < 1 {
		c.Limit = def.Limit
	}
	if c.MaxGenres == 0 {
		c.MaxGenres = def.MaxGenres
	}
	if c.RecentItems == 0 {
		c.RecentItems = def.RecentItems
	}
	if c.MinHistory == 0 {
		c.MinHistory = def.MinHistory
	}
	if c.PopularityWeight == 0 && c.VoteWeight == 0 && c.RandomWeight == 0 {
		c.PopularityWeight = def.PopularityWeight
		c.VoteWeight = def.VoteWeight
		c.RandomWeight = def.RandomWeight
	}
	if len(c.GenreKinds) == 0 {
		c.GenreKinds = def.GenreKinds
	}
	return c
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.CacheTTL <= 0:
		return errors.New("recommend: cache ttl must be positive")
	case c.Limit < 1:
		return fmt.Errorf("recommend: limit must be at least 1, got %d", c.Limit)
	case c.MaxGenres < 0 || c.RecentItems < 0 || c.MinHistory < 0:
		return errors.New("recommend: candidate limits must not be negative")
	case c.PopularityWeight < 0 || c.VoteWeight < 0 || c.RandomWeight < 0:
		return errors.New("recommend: weights must not be negative")
	case len(c.GenreKinds) == 0:
		return errors.New("recommend: at least one genre kind is required")
	}
	for _, k := range c.GenreKinds {
		if !k.Valid() {
			return fmt.Errorf("recommend: invalid genre kind %q", k)
		}
	}
	return nil
}
