// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package profile

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps profiles in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
	now      func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[string]*Profile), now: time.Now}
}

// Put replaces a whole profile.
func (s *MemoryStore) Put(p *Profile) {
	cp := clone(p)
	s.mu.Lock()
	s.profiles[p.UserID] = cp
	s.mu.Unlock()
}

// Profile implements Reader. The returned profile is a copy.
func (s *MemoryStore) Profile(_ context.Context, userID string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(p), nil
}

// SetPreferredGenres implements Store.
func (s *MemoryStore) SetPreferredGenres(_ context.Context, userID string, genreIDs []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(userID)
	p.PreferredGenreIDs = dedupeGenres(genreIDs)
	p.UpdatedAt = s.now()
	return nil
}

// AppendHistory implements Store.
func (s *MemoryStore) AppendHistory(_ context.Context, userID string, entry HistoryEntry) error {
	if entry.WatchedAt.IsZero() {
		entry.WatchedAt = s.now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.getOrCreate(userID)
	p.appendHistory(entry)
	p.UpdatedAt = s.now()
	return nil
}

func (s *MemoryStore) getOrCreate(userID string) *Profile {
	p, ok := s.profiles[userID]
	if !ok {
		p = &Profile{UserID: userID}
		s.profiles[userID] = p
	}
	return p
}

func clone(p *Profile) *Profile {
	cp := *p
	cp.PreferredGenreIDs = append([]int(nil), p.PreferredGenreIDs...)
	cp.History = append([]HistoryEntry(nil), p.History...)
	return &cp
}

var _ Store = (*MemoryStore)(nil)
