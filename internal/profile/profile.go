// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package profile stores what the recommendation engine knows about a user:
// preferred genres and watch history. The engine only reads; history is
// appended by callers when playback starts.
package profile

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// ErrNotFound is returned for a user with no stored profile.
var ErrNotFound = errors.New("profile: not found")

// MaxHistory bounds the stored history per user; the oldest entries are dropped.
const MaxHistory = 500

// HistoryEntry records one watched item.
type HistoryEntry struct {
	ItemID    int          `json:"item_id"`
	Kind      catalog.Kind `json:"kind"`
	WatchedAt time.Time    `json:"watched_at"`
}

// Profile is one user's preferences and history.
type Profile struct {
	UserID            string         `json:"user_id"`
	PreferredGenreIDs []int          `json:"preferred_genre_ids"`
	History           []HistoryEntry `json:"history"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// RecentHistory returns up to n entries, most recently watched first.
func (p *Profile) RecentHistory(n int) []HistoryEntry {
	out := make([]HistoryEntry, len(p.History))
	copy(out, p.History)
	sort.SliceStable(out, func(i, j int) bool { return out[i].WatchedAt.After(out[j].WatchedAt) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// WatchedIDs returns the set of watched item ids.
func (p *Profile) WatchedIDs() map[int]struct{} {
	ids := make(map[int]struct{}, len(p.History))
	for _, h := range p.History {
		ids[h.ItemID] = struct{}{}
	}
	return ids
}

// appendHistory records e, replacing an earlier entry for the same item so
// rewatches move to the front instead of duplicating.
func (p *Profile) appendHistory(e HistoryEntry) {
	kept := p.History[:0]
	for _, h := range p.History {
		if h.ItemID == e.ItemID && h.Kind == e.Kind {
			continue
		}
		kept = append(kept, h)
	}
	p.History = append(kept, e)
	if len(p.History) > MaxHistory {
		p.History = p.RecentHistory(MaxHistory)
		sort.SliceStable(p.History, func(i, j int) bool { return p.History[i].WatchedAt.Before(p.History[j].WatchedAt) })
	}
}

// Reader is what the recommendation engine needs.
type Reader interface {
	Profile(ctx context.Context, userID string) (*Profile, error)
}

// Store adds the caller-side writes.
type Store interface {
	Reader
	SetPreferredGenres(ctx context.Context, userID string, genreIDs []int) error
	AppendHistory(ctx context.Context, userID string, entry HistoryEntry) error
}

func dedupeGenres(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
