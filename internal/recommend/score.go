// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/shape"
)

// popularityCap bounds the normalized popularity term to the 0-10 rating scale.
const popularityCap = 10.0

// ScoredItem is a candidate with its ranking score. It only lives for one ranking pass.
type ScoredItem struct {
	catalog.Item
	Score float64
}

// Score blends popularity, rating and a random draw in [0,1).
func (c Config) Score(item catalog.Item, draw float64) float64 {
	pop := math.Min(item.Popularity/100, popularityCap)
	if pop < 0 {
		pop = 0
	}
	return c.PopularityWeight*pop + c.VoteWeight*item.VoteAverage + c.RandomWeight*draw*10
}

// filterPool drops id-less, duplicate, watched and posterless candidates.
// The first occurrence of an id wins.
func filterPool(pool []catalog.Item, watched map[int]struct{}) []catalog.Item {
	seen := make(map[int]struct{}, len(pool))
	out := make([]catalog.Item, 0, len(pool))
	for _, it := range pool {
		if it.ID == 0 {
			continue
		}
		if _, dup := seen[it.ID]; dup {
			continue
		}
		seen[it.ID] = struct{}{}
		if _, ok := watched[it.ID]; ok {
			continue
		}
		if !it.HasPoster() {
			continue
		}
		out = append(out, it)
	}
	return out
}

// rank scores items, sorts them best first and keeps the top limit.
func (c Config) rank(items []catalog.Item, rng shape.Rand, limit int) []catalog.Item {
	scored := make([]ScoredItem, len(items))
	for i, it := range items {
		scored[i] = ScoredItem{Item: it, Score: c.Score(it, rng.Float64())}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	if len(scored) > limit {
		scored = scored[:limit]
	}
	out := make([]catalog.Item, len(scored))
	for i, s := range scored {
		out[i] = s.Item
	}
	return out
}
