// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package catalog defines the normalized catalog item shared by discovery,
// shaping and recommendation, plus the static genre tables.
package catalog

import "time"

// Item is a movie or series as returned to callers. The upstream's movie and
// series shapes are normalized into this one type by Normalize.
type Item struct {
	ID               int        `json:"id"`
	Kind             Kind       `json:"kind"`
	Title            string     `json:"title"`
	OriginalTitle    string     `json:"original_title,omitempty"`
	Overview         string     `json:"overview,omitempty"`
	PosterPath       string     `json:"poster_path,omitempty"`
	BackdropPath     string     `json:"backdrop_path,omitempty"`
	GenreIDs         []int      `json:"genre_ids,omitempty"`
	OriginalLanguage string     `json:"original_language,omitempty"`
	Popularity       float64    `json:"popularity"`
	VoteAverage      float64    `json:"vote_average"`
	VoteCount        int        `json:"vote_count"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
}

// Key identifies an item across kinds. Movie 603 and series 603 are different items.
type Key struct {
	Kind Kind
	ID   int
}

// Key returns the identity of it.
func (it *Item) Key() Key {
	return Key{Kind: it.Kind, ID: it.ID}
}

// HasPoster reports whether it has a primary visual asset.
func (it *Item) HasPoster() bool {
	return it.PosterPath != ""
}

// Year returns the release year, or 0 when unknown.
func (it *Item) Year() int {
	if it.ReleaseDate == nil {
		return 0
	}
	return it.ReleaseDate.Year()
}
