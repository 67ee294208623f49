// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/cinediscover/internal/cache"
	"github.com/tomtom215/cinediscover/internal/catalog"
)

// Page is one page of a listing.
type Page struct {
	Items        []catalog.Item `json:"items"`
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type pageResponse struct {
	Page         int               `json:"page"`
	Results      []catalog.RawItem `json:"results"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
}

func (r *pageResponse) toPage(hint catalog.Kind) *Page {
	return &Page{
		Items:        catalog.NormalizeAll(r.Results, hint),
		Page:         r.Page,
		TotalPages:   r.TotalPages,
		TotalResults: r.TotalResults,
	}
}

// Translation is one language an item has been translated into.
type Translation struct {
	Language    string `json:"iso_639_1"`
	Region      string `json:"iso_3166_1"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
}

func checkKind(kind catalog.Kind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return nil
}

// listPage fetches and caches a listing page. Only non-empty pages are cached.
func (c *Client) listPage(ctx context.Context, endpoint, path string, kind catalog.Kind, params url.Values) (*Page, error) {
	key := cache.GenerateKey(endpoint+"_"+kind.String(), path+"?"+params.Encode()+"&language="+c.cfg.Language)
	if c.cache != nil {
		var cached Page
		if c.cache.Get(key, &cached) {
			return &cached, nil
		}
	}

	var resp pageResponse
	if err := c.get(ctx, endpoint, path, params, &resp); err != nil {
		return nil, err
	}
	page := resp.toPage(kind)
	if c.cache != nil && len(page.Items) > 0 {
		c.cache.Set(key, page, c.cfg.ListTTL)
	}
	return page, nil
}

// DiscoverPage runs a filtered discovery query. params are passed through
// unchanged (with_genres, sort_by, page and so on).
func (c *Client) DiscoverPage(ctx context.Context, kind catalog.Kind, params url.Values) (*Page, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return c.listPage(ctx, "discover", "/discover/"+kind.Path(), kind, params)
}

// Discover is DiscoverPage without pagination metadata.
func (c *Client) Discover(ctx context.Context, kind catalog.Kind, params url.Values) ([]catalog.Item, error) {
	page, err := c.DiscoverPage(ctx, kind, params)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// Search runs a free-text title search.
func (c *Client) Search(ctx context.Context, kind catalog.Kind, query string, page int) ([]catalog.Item, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []catalog.Item{}, nil
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(max(page, 1)))
	params.Set("include_adult", "false")

	p, err := c.listPage(ctx, "search", "/search/"+kind.Path(), kind, params)
	if err != nil {
		return nil, err
	}
	return p.Items, nil
}

// Recommendations returns the upstream's recommendations for one item.
func (c *Client) Recommendations(ctx context.Context, kind catalog.Kind, id, page int) ([]catalog.Item, error) {
	return c.related(ctx, "recommendations", kind, id, page)
}

// Similar returns items the upstream considers similar to one item.
func (c *Client) Similar(ctx context.Context, kind catalog.Kind, id, page int) ([]catalog.Item, error) {
	return c.related(ctx, "similar", kind, id, page)
}

func (c *Client) related(ctx context.Context, rel string, kind catalog.Kind, id, page int) ([]catalog.Item, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(max(page, 1)))

	p, err := c.listPage(ctx, rel, fmt.Sprintf("/%s/%d/%s", kind.Path(), id, rel), kind, params)
	if err != nil {
		return nil, err
	}
	return p.Items, nil
}

// Translations lists the languages an item is available in.
func (c *Client) Translations(ctx context.Context, kind catalog.Kind, id int) ([]Translation, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var resp struct {
		Translations []Translation `json:"translations"`
	}
	if err := c.get(ctx, "translations", fmt.Sprintf("/%s/%d/translations", kind.Path(), id), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Translations == nil {
		return []Translation{}, nil
	}
	return resp.Translations, nil
}

// HasTranslation reports whether an item is available in lang (an ISO 639-1 code).
func (c *Client) HasTranslation(ctx context.Context, kind catalog.Kind, id int, lang string) (bool, error) {
	translations, err := c.Translations(ctx, kind, id)
	if err != nil {
		return false, err
	}
	for _, t := range translations {
		if strings.EqualFold(t.Language, lang) {
			return true, nil
		}
	}
	return false, nil
}

// Genres returns the upstream genre list for kind.
func (c *Client) Genres(ctx context.Context, kind catalog.Kind) ([]catalog.Genre, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	key := "genres_" + kind.String() + "_" + c.cfg.Language
	if c.cache != nil {
		var cached []catalog.Genre
		if c.cache.Get(key, &cached) {
			return cached, nil
		}
	}

	var resp struct {
		Genres []catalog.Genre `json:"genres"`
	}
	if err := c.get(ctx, "genres", "/genre/"+kind.Path()+"/list", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Genres == nil {
		resp.Genres = []catalog.Genre{}
	}
	if c.cache != nil && len(resp.Genres) > 0 {
		c.cache.Set(key, resp.Genres, c.cfg.GenresTTL)
	}
	return resp.Genres, nil
}

// Collapse turns a failed call into an empty result.
func Collapse[T any](v []T, err error) []T {
	if err != nil || v == nil {
		return []T{}
	}
	return v
}
