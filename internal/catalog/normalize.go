// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package catalog

import (
	"time"

	"github.com/goccy/go-json"
)

// RawItem is an upstream result before normalization. Movies carry title and
// release_date, series carry name and first_air_date; media_type is present
// only on mixed listings.
type RawItem struct {
	ID               int             `json:"id"`
	MediaType        string          `json:"media_type,omitempty"`
	Title            string          `json:"title,omitempty"`
	Name             string          `json:"name,omitempty"`
	OriginalTitle    string          `json:"original_title,omitempty"`
	OriginalName     string          `json:"original_name,omitempty"`
	Overview         string          `json:"overview,omitempty"`
	PosterPath       string          `json:"poster_path,omitempty"`
	BackdropPath     string          `json:"backdrop_path,omitempty"`
	GenreIDs         []int           `json:"genre_ids,omitempty"`
	Genres           []Genre         `json:"genres,omitempty"`
	OriginalLanguage string          `json:"original_language,omitempty"`
	Popularity       float64         `json:"popularity"`
	VoteAverage      float64         `json:"vote_average"`
	VoteCount        int             `json:"vote_count"`
	ReleaseDate      string          `json:"release_date,omitempty"`
	FirstAirDate     string          `json:"first_air_date,omitempty"`
	Seasons          json.RawMessage `json:"seasons,omitempty"`
	NumberOfSeasons  int             `json:"number_of_seasons,omitempty"`
}

// InferKind decides whether raw is a movie or a series. The first rule that
// decides wins:
//
//  1. an explicit kind: media_type, else hint (the endpoint the item came from)
//  2. a movie-only title without a series-only name, or the reverse
//  3. a movie-only release_date without first_air_date, or the reverse
//  4. a seasons collection marks a series
//  5. otherwise movie
func InferKind(raw *RawItem, hint Kind) Kind {
	switch raw.MediaType {
	case "movie":
		return KindMovie
	case "tv":
		return KindSeries
	}
	if hint.Valid() {
		return hint
	}

	hasTitle, hasName := raw.Title != "", raw.Name != ""
	switch {
	case hasTitle && !hasName:
		return KindMovie
	case hasName && !hasTitle:
		return KindSeries
	}

	hasRelease, hasAir := raw.ReleaseDate != "", raw.FirstAirDate != ""
	switch {
	case hasRelease && !hasAir:
		return KindMovie
	case hasAir && !hasRelease:
		return KindSeries
	}

	if raw.NumberOfSeasons > 0 || (len(raw.Seasons) > 0 && string(raw.Seasons) != "null") {
		return KindSeries
	}
	return KindMovie
}

// Normalize converts raw into an Item. hint is the kind implied by the
// request; pass "" for mixed listings.
func Normalize(raw *RawItem, hint Kind) Item {
	kind := InferKind(raw, hint)

	it := Item{
		ID:               raw.ID,
		Kind:             kind,
		Overview:         raw.Overview,
		PosterPath:       raw.PosterPath,
		BackdropPath:     raw.BackdropPath,
		GenreIDs:         raw.GenreIDs,
		OriginalLanguage: raw.OriginalLanguage,
		Popularity:       raw.Popularity,
		VoteAverage:      raw.VoteAverage,
		VoteCount:        raw.VoteCount,
	}

	// Detail payloads carry genre objects instead of ids.
	if len(it.GenreIDs) == 0 && len(raw.Genres) > 0 {
		it.GenreIDs = make([]int, len(raw.Genres))
		for i, g := range raw.Genres {
			it.GenreIDs[i] = g.ID
		}
	}

	if kind == KindSeries {
		it.Title = firstNonEmpty(raw.Name, raw.Title)
		it.OriginalTitle = firstNonEmpty(raw.OriginalName, raw.OriginalTitle)
		it.ReleaseDate = parseDate(firstNonEmpty(raw.FirstAirDate, raw.ReleaseDate))
	} else {
		it.Title = firstNonEmpty(raw.Title, raw.Name)
		it.OriginalTitle = firstNonEmpty(raw.OriginalTitle, raw.OriginalName)
		it.ReleaseDate = parseDate(firstNonEmpty(raw.ReleaseDate, raw.FirstAirDate))
	}
	return it
}

// NormalizeAll normalizes a page of results, dropping people and other
// non-catalog entries from mixed listings.
func NormalizeAll(raws []RawItem, hint Kind) []Item {
	items := make([]Item, 0, len(raws))
	for i := range raws {
		if raws[i].MediaType != "" && raws[i].MediaType != "movie" && raws[i].MediaType != "tv" {
			continue
		}
		items = append(items, Normalize(&raws[i], hint))
	}
	return items
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
