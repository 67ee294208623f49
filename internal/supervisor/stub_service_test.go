// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// stubService is a suture.Service whose first failures Serve calls return
// an error before it settles into blocking on ctx.
type stubService struct {
	name     string
	failures int32
	starts   atomic.Int32
	started  chan struct{}
}

func newStubService(name string, failures int) *stubService {
	return &stubService{name: name, failures: int32(failures), started: make(chan struct{}, 64)}
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	select {
	case s.started <- struct{}{}:
	default:
	}
	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }
