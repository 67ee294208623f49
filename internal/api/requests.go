// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/discover"
)

// DiscoverRequest is the query string of GET /api/v1/discover.
//
// Fields:
//   - Kind: movie (default) or series; tv and show are accepted
//   - GenreID: upstream genre id or a built-in genre name, 0 for any
//   - LanguageMode: none, original or dubbed; defaults to original when Language is set
//   - Language: ISO 639-1 code
//   - YearFrom/YearTo: inclusive release (or first-air) year bounds
//   - RatingFrom/RatingTo: vote average bounds, default 0 and 10
//   - Sort: popularity (default), rating or newest
//   - Query: free text; when set every other filter except Kind and paging is ignored
//   - Page, PageSize: upstream page and number of items returned
//   - RandomPage: pick a random upstream page instead of Page
//   - Randomize: shuffle the page (ignored for rating and newest sorts)
//   - PostersOnly: drop items without a poster (default true)
type DiscoverRequest struct {
	Kind         string  `query:"kind" validate:"omitempty,oneof=movie movies film series tv show shows"`
	GenreID      int     `query:"genre" validate:"gte=0"`
	LanguageMode string  `query:"language_mode" validate:"omitempty,oneof=none original dubbed"`
	Language     string  `query:"language" validate:"omitempty,langcode"`
	YearFrom     int     `query:"year_from" validate:"omitempty,gte=1870,lte=2100"`
	YearTo       int     `query:"year_to" validate:"omitempty,gte=1870,lte=2100,gtefield=YearFrom"`
	RatingFrom   float64 `query:"rating_from" validate:"gte=0,lte=10"`
	RatingTo     float64 `query:"rating_to" validate:"gte=0,lte=10,gtefield=RatingFrom"`
	Sort         string  `query:"sort" validate:"omitempty,oneof=popularity rating newest"`
	Query        string  `query:"q" validate:"max=200"`
	Page         int     `query:"page" validate:"gte=1,lte=500"`
	PageSize     int     `query:"page_size" validate:"omitempty,gte=1,lte=100"`
	RandomPage   bool    `query:"random_page"`
	Randomize    bool    `query:"randomize"`
	PostersOnly  bool    `query:"posters_only"`
}

// parseDiscoverRequest reads q into a DiscoverRequest. It only fails on
// values of the wrong type; range checks are left to validation. With a text
// query the discovery-only parameters are not read.
func parseDiscoverRequest(q url.Values) (*DiscoverRequest, error) {
	req := &DiscoverRequest{
		Kind:     strings.TrimSpace(q.Get("kind")),
		Query:    strings.TrimSpace(q.Get("q")),
		RatingTo: 10,
	}

	var err error
	if req.Query == "" {
		if err = req.parseDiscoverFilters(q); err != nil {
			return nil, err
		}
	}
	if req.Page, err = queryInt(q, "page", 1); err != nil {
		return nil, err
	}
	if req.PageSize, err = queryInt(q, "page_size", 0); err != nil {
		return nil, err
	}
	if req.Randomize, err = queryBool(q, "randomize", false); err != nil {
		return nil, err
	}
	if req.PostersOnly, err = queryBool(q, "posters_only", true); err != nil {
		return nil, err
	}
	return req, nil
}

// parseDiscoverFilters reads the parameters that only apply to discovery.
func (req *DiscoverRequest) parseDiscoverFilters(q url.Values) error {
	req.LanguageMode = strings.ToLower(strings.TrimSpace(q.Get("language_mode")))
	req.Language = strings.TrimSpace(q.Get("language"))
	req.Sort = strings.ToLower(strings.TrimSpace(q.Get("sort")))

	var err error
	if req.GenreID, err = queryGenre(q, req.Kind); err != nil {
		return err
	}
	if req.YearFrom, err = queryInt(q, "year_from", 0); err != nil {
		return err
	}
	if req.YearTo, err = queryInt(q, "year_to", 0); err != nil {
		return err
	}
	if req.RatingFrom, err = queryFloat(q, "rating_from", 0); err != nil {
		return err
	}
	if req.RatingTo, err = queryFloat(q, "rating_to", 10); err != nil {
		return err
	}
	if req.RandomPage, err = queryBool(q, "random_page", false); err != nil {
		return err
	}
	return nil
}

// queryGenre reads the genre parameter as an id or, failing that, as a genre
// name of kindName (movie when unparseable).
func queryGenre(q url.Values, kindName string) (int, error) {
	raw := strings.TrimSpace(q.Get("genre"))
	if raw == "" {
		return 0, nil
	}
	if id, err := strconv.Atoi(raw); err == nil {
		return id, nil
	}
	kind, err := catalog.ParseKind(kindName)
	if err != nil {
		kind = catalog.KindMovie
	}
	g, ok := catalog.GenreByName(kind, raw)
	if !ok {
		return 0, fmt.Errorf("unknown genre %q", raw)
	}
	return g.ID, nil
}

// Filter converts a validated request into an engine filter.
func (req *DiscoverRequest) Filter() discover.Filter {
	kind := catalog.KindMovie
	if req.Kind != "" {
		if k, err := catalog.ParseKind(req.Kind); err == nil {
			kind = k
		}
	}

	mode := discover.LanguageNone
	switch req.LanguageMode {
	case "original":
		mode = discover.LanguageOriginal
	case "dubbed":
		mode = discover.LanguageDubbed
	case "":
		if req.Language != "" {
			mode = discover.LanguageOriginal
		}
	}

	sortKey := discover.SortPopularity
	switch req.Sort {
	case "rating":
		sortKey = discover.SortRating
	case "newest":
		sortKey = discover.SortNewest
	}

	ratingTo := req.RatingTo
	return discover.Filter{
		Kind:          kind,
		GenreID:       req.GenreID,
		LanguageMode:  mode,
		LanguageCode:  req.Language,
		YearFrom:      req.YearFrom,
		YearTo:        req.YearTo,
		RatingFrom:    req.RatingFrom,
		RatingTo:      &ratingTo,
		Sort:          sortKey,
		Query:         req.Query,
		Page:          req.Page,
		PageSize:      req.PageSize,
		Randomize:     req.Randomize,
		RequirePoster: req.PostersOnly,
	}
}

// GenresRequest is the body of PUT /api/v1/profile/genres.
type GenresRequest struct {
	GenreIDs []int `json:"genre_ids" validate:"max=3,dive,gte=1"`
}

// HistoryRequest is the body of POST /api/v1/profile/history.
type HistoryRequest struct {
	ItemID    int        `json:"item_id" validate:"required,gte=1"`
	Kind      string     `json:"kind" validate:"omitempty,oneof=movie movies film series tv show shows"`
	WatchedAt *time.Time `json:"watched_at"`
}

// kind returns the parsed kind, movie when omitted.
func (req *HistoryRequest) kind() catalog.Kind {
	if k, err := catalog.ParseKind(req.Kind); err == nil {
		return k
	}
	return catalog.KindMovie
}
