// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package shape post-processes result lists before they reach a caller:
// deduplication, poster filtering, shuffling and truncation, plus the
// random-page selector used to vary browse sessions.
//
// All functions are pure given their RNG and return new slices.
package shape

import "github.com/tomtom215/cinediscover/internal/catalog"

// Options controls Apply.
type Options struct {
	// PageSize truncates the result. Zero or negative keeps everything.
	PageSize int

	// Randomize shuffles the result before truncation.
	Randomize bool

	// RequirePoster drops items without a poster. Grid views set it; flexible
	// card views (unified search across people) do not.
	RequirePoster bool
}

// Apply runs the pipeline: dedupe, poster filter, shuffle, truncate.
// The poster filter runs before truncation so a filtered page is as full as
// the input allows.
func Apply(items []catalog.Item, opts Options, rng Rand) []catalog.Item {
	out := Dedupe(items)
	if opts.RequirePoster {
		out = FilterPosters(out)
	}
	if opts.Randomize && rng != nil {
		Shuffle(out, rng)
	}
	return Truncate(out, opts.PageSize)
}

// Dedupe drops repeated (kind, id) pairs, keeping the first occurrence.
func Dedupe(items []catalog.Item) []catalog.Item {
	seen := make(map[catalog.Key]struct{}, len(items))
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		k := items[i].Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, items[i])
	}
	return out
}

// DedupeByID drops repeated ids regardless of kind, keeping the first occurrence.
func DedupeByID(items []catalog.Item) []catalog.Item {
	seen := make(map[int]struct{}, len(items))
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		if _, dup := seen[items[i].ID]; dup {
			continue
		}
		seen[items[i].ID] = struct{}{}
		out = append(out, items[i])
	}
	return out
}

// FilterPosters keeps items that have a poster.
func FilterPosters(items []catalog.Item) []catalog.Item {
	out := make([]catalog.Item, 0, len(items))
	for i := range items {
		if items[i].HasPoster() {
			out = append(out, items[i])
		}
	}
	return out
}

// Truncate returns at most n items. n <= 0 returns items unchanged.
func Truncate(items []catalog.Item, n int) []catalog.Item {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}

// Shuffle permutes items in place with a Fisher-Yates shuffle, so every
// permutation is equally likely for a uniform rng.
func Shuffle(items []catalog.Item, rng Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
