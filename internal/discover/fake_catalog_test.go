// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package discover

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/tomtom215/cinediscover/internal/catalog"
)

// fakeCatalog answers discover and search calls from scripted functions and
// records every call it receives.
type fakeCatalog struct {
	mu sync.Mutex

	discoverFn func(params url.Values) ([]catalog.Item, error)
	searchFn   func(query string) ([]catalog.Item, error)

	discoverCalls []url.Values
	searchCalls   []string
}

func (f *fakeCatalog) Discover(_ context.Context, _ catalog.Kind, params url.Values) ([]catalog.Item, error) {
	f.mu.Lock()
	f.discoverCalls = append(f.discoverCalls, params)
	f.mu.Unlock()
	if f.discoverFn == nil {
		return []catalog.Item{}, nil
	}
	return f.discoverFn(params)
}

func (f *fakeCatalog) Search(_ context.Context, _ catalog.Kind, query string, _ int) ([]catalog.Item, error) {
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, query)
	f.mu.Unlock()
	if f.searchFn == nil {
		return []catalog.Item{}, nil
	}
	return f.searchFn(query)
}

// itemsFrom builds n poster-bearing movies with ids starting at first.
func itemsFrom(first, n int) []catalog.Item {
	out := make([]catalog.Item, n)
	for i := range out {
		id := first + i
		out[i] = catalog.Item{ID: id, Kind: catalog.KindMovie, Title: fmt.Sprintf("m%d", id), PosterPath: fmt.Sprintf("/%d.jpg", id)}
	}
	return out
}
