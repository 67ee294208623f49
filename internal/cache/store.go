// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package cache

import (
	"errors"
	"sync"
	"time"
)

// ErrEmptyKey is returned by stores that cannot hold an empty key.
var ErrEmptyKey = errors.New("cache: empty key")

// Store is the durable layer behind a Cache: string keys to opaque documents.
// The Cache enforces TTLs itself; expiresAt is a hint a store may use to
// reclaim entries that are never read again.
type Store interface {
	Load(key string) (data []byte, found bool, err error)
	Save(key string, data []byte, expiresAt time.Time) error
	Remove(key string) error
}

// MemoryStore is a Store kept in process memory. It backs tests and runs
// without a data directory.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load implements Store.
func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

// Save implements Store.
func (s *MemoryStore) Save(key string, data []byte, _ time.Time) error {
	if key == "" {
		return ErrEmptyKey
	}
	v := make([]byte, len(data))
	copy(v, data)
	s.mu.Lock()
	s.data[key] = v
	s.mu.Unlock()
	return nil
}

// Remove implements Store.
func (s *MemoryStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Put writes raw bytes under key, bypassing the Cache envelope.
func (s *MemoryStore) Put(key string, raw []byte) {
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}

// Has reports whether key is present.
func (s *MemoryStore) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[key]
	return ok
}

var _ Store = (*MemoryStore)(nil)
