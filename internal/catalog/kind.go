// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package catalog

import (
	"fmt"
	"strings"
)

// Kind distinguishes films from episodic series.
type Kind string

const (
	KindMovie  Kind = "movie"
	KindSeries Kind = "series"
)

// ParseKind accepts the spellings used by clients and by the upstream API.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return KindMovie, nil
	case "series", "tv", "show", "shows":
		return KindSeries, nil
	default:
		return "", fmt.Errorf("unknown kind %q", s)
	}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindMovie || k == KindSeries
}

// Path is the upstream path segment for k: movie or tv.
func (k Kind) Path() string {
	if k == KindSeries {
		return "tv"
	}
	return "movie"
}

func (k Kind) String() string {
	return string(k)
}
