// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package shape

import (
	"math/rand"
	"sync"
	"time"
)

// Rand is the randomness the pipeline needs. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RandomPage returns a page number drawn uniformly from [1, maxPage].
// maxPage below 1 is treated as 1.
func RandomPage(rng Rand, maxPage int) int {
	if maxPage <= 1 {
		return 1
	}
	return rng.Intn(maxPage) + 1
}

// LockedRand is a Rand safe for concurrent use.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedRand seeds a LockedRand. A zero seed uses the current time.
func NewLockedRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // G404: shuffling and scoring jitter, not security
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

// Intn implements Rand.
func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Float64 implements Rand.
func (l *LockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}
