// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package catalog

import (
	"sort"
	"strings"
)

// Genre is an upstream genre. Ids differ between movies and series for some
// genres (Action is 28 for movies, Action & Adventure is 10759 for series).
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var movieGenres = map[int]string{
	28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy", 80: "Crime",
	99: "Documentary", 18: "Drama", 10751: "Family", 14: "Fantasy", 36: "History",
	27: "Horror", 10402: "Music", 9648: "Mystery", 10749: "Romance",
	878: "Science Fiction", 10770: "TV Movie", 53: "Thriller", 10752: "War", 37: "Western",
}

var seriesGenres = map[int]string{
	10759: "Action & Adventure", 16: "Animation", 35: "Comedy", 80: "Crime",
	99: "Documentary", 18: "Drama", 10751: "Family", 10762: "Kids", 9648: "Mystery",
	10763: "News", 10764: "Reality", 10765: "Sci-Fi & Fantasy", 10766: "Soap",
	10767: "Talk", 10768: "War & Politics", 37: "Western",
}

func genreTable(kind Kind) map[int]string {
	if kind == KindSeries {
		return seriesGenres
	}
	return movieGenres
}

// GenreName returns the display name of id for kind, or "" when unknown.
func GenreName(kind Kind, id int) string {
	return genreTable(kind)[id]
}

// GenreByName looks a genre up by case-insensitive name.
func GenreByName(kind Kind, name string) (Genre, bool) {
	for id, n := range genreTable(kind) {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Genre{ID: id, Name: n}, true
		}
	}
	return Genre{}, false
}

// StaticGenres returns the built-in genre list for kind sorted by name. It is
// served when the upstream genre list cannot be fetched.
func StaticGenres(kind Kind) []Genre {
	table := genreTable(kind)
	out := make([]Genre, 0, len(table))
	for id, name := range table {
		out = append(out, Genre{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
