// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package discover

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// LanguageMode selects how LanguageCode constrains results.
type LanguageMode string

const (
	LanguageNone     LanguageMode = ""
	LanguageOriginal LanguageMode = "original" // originally produced in the language
	LanguageDubbed   LanguageMode = "dubbed"   // available in the language
)

// SortKey orders discovery results.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
)

// Strict reports whether the order is a ranking the caller asked for
// explicitly, which shuffling would destroy.
func (s SortKey) Strict() bool {
	return s == SortRating || s == SortNewest
}

// Filter is a user's browse request.
type Filter struct {
	Kind         catalog.Kind
	GenreID      int // 0 means any genre
	LanguageMode LanguageMode
	LanguageCode string
	YearFrom     int // 0 means unbounded
	YearTo       int // 0 means unbounded
	RatingFrom   float64
	RatingTo     *float64 // nil means 10
	Sort         SortKey

	// Query switches to free-text search; every other filter is then ignored.
	Query string

	Page          int
	PageSize      int
	Randomize     bool
	RequirePoster bool
}

// Strategy is the kind of upstream call a Filter resolves to.
type Strategy string

const (
	StrategyDiscover Strategy = "discover"
	StrategySearch   Strategy = "search"
)

// Plan is the single upstream call a Filter maps to.
type Plan struct {
	Strategy Strategy
	Kind     catalog.Kind
	Params   url.Values // discover parameters
	Query    string     // search text
	Page     int
}

// dateField is the kind-specific date parameter prefix.
func dateField(kind catalog.Kind) string {
	if kind == catalog.KindSeries {
		return "first_air_date"
	}
	return "primary_release_date"
}

func sortParam(kind catalog.Kind, s SortKey) string {
	switch s {
	case SortRating:
		return "vote_average.desc"
	case SortNewest:
		return dateField(kind) + ".desc"
	default:
		return "popularity.desc"
	}
}

// Resolve maps f to one upstream call. voteFloor, when positive, is sent as
// vote_count.gte on rating-sorted queries so single-vote titles do not top the list.
func Resolve(f Filter, voteFloor int) Plan {
	kind := f.Kind
	if !kind.Valid() {
		kind = catalog.KindMovie
	}
	page := f.Page
	if page < 1 {
		page = 1
	}

	if f.Query != "" {
		return Plan{Strategy: StrategySearch, Kind: kind, Query: f.Query, Page: page}
	}

	p := url.Values{}
	p.Set("page", strconv.Itoa(page))
	p.Set("sort_by", sortParam(kind, f.Sort))
	p.Set("include_adult", "false")

	if f.GenreID > 0 {
		p.Set("with_genres", strconv.Itoa(f.GenreID))
	}

	df := dateField(kind)
	if f.YearFrom > 0 {
		p.Set(df+".gte", fmt.Sprintf("%04d-01-01", f.YearFrom))
	}
	if f.YearTo > 0 {
		p.Set(df+".lte", fmt.Sprintf("%04d-12-31", f.YearTo))
	}

	ratingTo := 10.0
	if f.RatingTo != nil {
		ratingTo = *f.RatingTo
	}
	p.Set("vote_average.gte", strconv.FormatFloat(f.RatingFrom, 'f', -1, 64))
	p.Set("vote_average.lte", strconv.FormatFloat(ratingTo, 'f', -1, 64))
	if f.Sort == SortRating && voteFloor > 0 {
		p.Set("vote_count.gte", strconv.Itoa(voteFloor))
	}

	if f.LanguageCode != "" {
		switch f.LanguageMode {
		case LanguageOriginal:
			p.Set("with_original_language", f.LanguageCode)
		case LanguageDubbed:
			p.Set("with_language", f.LanguageCode)
		}
	}

	return Plan{Strategy: StrategyDiscover, Kind: kind, Params: p, Page: page}
}

// originalLanguageFallback rewrites a dubbed plan into original-language discovery.
func originalLanguageFallback(p url.Values, code string) url.Values {
	out := url.Values{}
	for k, v := range p {
		out[k] = append([]string(nil), v...)
	}
	out.Del("with_language")
	out.Set("with_original_language", code)
	return out
}
