// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package cache

import (
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type payload struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
}

// failingStore fails every operation.
type failingStore struct{}

func (failingStore) Load(string) ([]byte, bool, error)    { return nil, false, errors.New("disk gone") }
func (failingStore) Save(string, []byte, time.Time) error { return errors.New("quota exceeded") }
func (failingStore) Remove(string) error                  { return errors.New("disk gone") }

func TestCache_SetGet(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := New(WithClock(clock.Now))

	c.Set("details_movie_603", payload{Title: "The Matrix", Year: 1999}, 15*time.Minute)

	var got payload
	if !c.Get("details_movie_603", &got) {
		t.Fatal("expected hit")
	}
	if got.Title != "The Matrix" || got.Year != 1999 {
		t.Errorf("got %+v", got)
	}

	var missing payload
	if c.Get("details_movie_604", &missing) {
		t.Error("expected miss for unknown key")
	}
}

func TestCache_Expiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := NewMemoryStore()
	c := New(WithClock(clock.Now), WithStore(store))

	c.Set("k", payload{Title: "a"}, 15*time.Minute)

	clock.Advance(14*time.Minute + 59*time.Second)
	var got payload
	if !c.Get("k", &got) {
		t.Fatal("entry should be visible before expiry")
	}

	clock.Advance(2 * time.Second)
	if c.Get("k", &got) {
		t.Fatal("entry should be invisible after expiry")
	}
	if c.Len() != 0 {
		t.Errorf("expired memory entry should be removed, len=%d", c.Len())
	}
	if store.Has("k") {
		t.Error("expired durable entry should be removed")
	}
}

func TestCache_ExpiryBoundaryIsExclusive(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.Set("k", 1, time.Minute)

	clock.Advance(time.Minute)
	var v int
	if c.Get("k", &v) {
		t.Error("entry must not be visible at exactly expiresAt")
	}
}

func TestCache_WarmRestart(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := NewMemoryStore()

	first := New(WithClock(clock.Now), WithStore(store))
	first.Set("genres_movie", []int{28, 12}, time.Hour)

	// A fresh process shares only the durable layer.
	second := New(WithClock(clock.Now), WithStore(store))
	var got []int
	if !second.Get("genres_movie", &got) {
		t.Fatal("expected durable hit")
	}
	if len(got) != 2 || got[0] != 28 {
		t.Errorf("got %v", got)
	}
	if second.Len() != 1 {
		t.Error("durable hit should repopulate memory")
	}
	if s := second.Stats(); s.DurableHits != 1 {
		t.Errorf("DurableHits = %d, want 1", s.DurableHits)
	}
}

func TestCache_CorruptDurableEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"missing value", `{"expires_at": 99999999999999}`},
		{"wrong value shape", `{"value": "text", "expires_at": 99999999999999}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewMemoryStore()
			store.Put("bad", []byte(tt.raw))
			c := New(WithStore(store))

			var got payload
			if c.Get("bad", &got) {
				t.Fatal("corrupt entry must be a miss")
			}
			if store.Has("bad") {
				t.Error("corrupt entry should be discarded")
			}
			if c.Stats().CorruptReads != 1 {
				t.Errorf("CorruptReads = %d, want 1", c.Stats().CorruptReads)
			}
		})
	}
}

func TestCache_DurableFailuresAreSwallowed(t *testing.T) {
	t.Parallel()

	c := New(WithStore(failingStore{}))
	c.Set("k", payload{Title: "x"}, time.Minute)

	var got payload
	if !c.Get("k", &got) {
		t.Fatal("memory layer should still serve the value")
	}

	c.Invalidate("k")
	if c.Get("k", &got) {
		t.Error("expected miss after invalidate")
	}
}

func TestCache_Invalidate(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	c := New(WithStore(store))
	c.Set("reco_42", []string{"a"}, time.Hour)

	c.Invalidate("reco_42")

	var got []string
	if c.Get("reco_42", &got) {
		t.Error("expected miss after invalidate")
	}
	if store.Has("reco_42") {
		t.Error("invalidate should remove the durable entry")
	}
}

func TestCache_NonPositiveTTL(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("k", 1, 0)
	if c.Len() != 0 {
		t.Error("zero TTL should store nothing")
	}
}

func TestCache_Sweep(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	c := New(WithClock(clock.Now))
	c.Set("short", 1, time.Minute)
	c.Set("long", 2, time.Hour)

	clock.Advance(2 * time.Minute)
	if n := c.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCache_HitRate(t *testing.T) {
	t.Parallel()

	c := New()
	c.Set("k", 1, time.Minute)

	var v int
	c.Get("k", &v)
	c.Get("k", &v)
	c.Get("missing", &v)
	c.Get("missing", &v)

	if got := c.HitRate(); got != 50 {
		t.Errorf("HitRate = %v, want 50", got)
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	c := New(WithStore(NewMemoryStore()))
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var v int
			c.Set("shared", i, time.Minute)
			c.Get("shared", &v)
			c.Invalidate("shared")
		}(i)
	}
	wg.Wait()
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	a := GenerateKey("discover_movie", map[string]string{"with_genres": "28", "page": "1"})
	b := GenerateKey("discover_movie", map[string]string{"page": "1", "with_genres": "28"})
	c := GenerateKey("discover_movie", map[string]string{"with_genres": "12", "page": "1"})

	if a != b {
		t.Error("map key order must not affect the key")
	}
	if a == c {
		t.Error("different params must give different keys")
	}
}
