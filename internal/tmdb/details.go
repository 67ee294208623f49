// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// detailSections are appended to every details request so one call fills the detail page.
const detailSections = "credits,similar,recommendations,watch/providers"

// CastMember is one credited performer.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// Provider is a streaming, rental or purchase outlet.
type Provider struct {
	ID       int    `json:"provider_id"`
	Name     string `json:"provider_name"`
	LogoPath string `json:"logo_path,omitempty"`
}

// Availability lists providers for one region.
type Availability struct {
	Link     string     `json:"link,omitempty"`
	Flatrate []Provider `json:"flatrate,omitempty"`
	Rent     []Provider `json:"rent,omitempty"`
	Buy      []Provider `json:"buy,omitempty"`
}

// Details is the full record of one item.
type Details struct {
	catalog.Item

	Tagline         string                  `json:"tagline,omitempty"`
	Status          string                  `json:"status,omitempty"`
	Runtime         int                     `json:"runtime,omitempty"`
	NumberOfSeasons int                     `json:"number_of_seasons,omitempty"`
	Genres          []catalog.Genre         `json:"genres,omitempty"`
	Cast            []CastMember            `json:"cast,omitempty"`
	Similar         []catalog.Item          `json:"similar,omitempty"`
	Recommendations []catalog.Item          `json:"recommendations,omitempty"`
	Providers       map[string]Availability `json:"providers,omitempty"`
}

type detailsResponse struct {
	catalog.RawItem

	Tagline        string `json:"tagline"`
	Status         string `json:"status"`
	Runtime        int    `json:"runtime"`
	EpisodeRunTime []int  `json:"episode_run_time"`
	Credits        struct {
		Cast []CastMember `json:"cast"`
	} `json:"credits"`
	Similar         pageResponse `json:"similar"`
	Recommendations pageResponse `json:"recommendations"`
	WatchProviders  struct {
		Results map[string]Availability `json:"results"`
	} `json:"watch/providers"`
}

// maxCast bounds the cast list kept on Details.
const maxCast = 20

// Details fetches one item with credits, similar items, recommendations and
// watch providers. Results are cached under details_<kind>_<id>.
func (c *Client) Details(ctx context.Context, kind catalog.Kind, id int) (*Details, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("details_%s_%d", kind, id)
	if c.cache != nil {
		var cached Details
		if c.cache.Get(key, &cached) {
			return &cached, nil
		}
	}

	params := url.Values{}
	params.Set("append_to_response", detailSections)

	var resp detailsResponse
	if err := c.get(ctx, "details", fmt.Sprintf("/%s/%d", kind.Path(), id), params, &resp); err != nil {
		return nil, err
	}

	d := &Details{
		Item:            catalog.Normalize(&resp.RawItem, kind),
		Tagline:         resp.Tagline,
		Status:          resp.Status,
		Runtime:         resp.Runtime,
		NumberOfSeasons: resp.NumberOfSeasons,
		Genres:          resp.Genres,
		Similar:         catalog.NormalizeAll(resp.Similar.Results, kind),
		Recommendations: catalog.NormalizeAll(resp.Recommendations.Results, kind),
		Providers:       resp.WatchProviders.Results,
	}
	if d.Runtime == 0 && len(resp.EpisodeRunTime) > 0 {
		d.Runtime = resp.EpisodeRunTime[0]
	}

	cast := resp.Credits.Cast
	sort.SliceStable(cast, func(i, j int) bool { return cast[i].Order < cast[j].Order })
	if len(cast) > maxCast {
		cast = cast[:maxCast]
	}
	d.Cast = cast

	if c.cache != nil && d.ID != 0 {
		c.cache.Set(key, d, c.cfg.DetailsTTL)
	}
	return d, nil
}
