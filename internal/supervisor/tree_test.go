// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitStarted(t *testing.T, s *stubService, n int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for i := 0; i < n; i++ {
		select {
		case <-s.started:
		case <-deadline:
			t.Fatalf("%s started %d times, want %d", s.name, s.starts.Load(), n)
		}
	}
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{FailureBackoff: time.Second})
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("root supervisor should not be nil")
	}

	def := DefaultTreeConfig()
	if tree.config.FailureThreshold != def.FailureThreshold {
		t.Errorf("FailureThreshold = %v, want %v", tree.config.FailureThreshold, def.FailureThreshold)
	}
	if tree.config.FailureDecay != def.FailureDecay {
		t.Errorf("FailureDecay = %v, want %v", tree.config.FailureDecay, def.FailureDecay)
	}
	if tree.config.FailureBackoff != time.Second {
		t.Errorf("explicit FailureBackoff overwritten: %v", tree.config.FailureBackoff)
	}
	if tree.config.ShutdownTimeout != def.ShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want %v", tree.config.ShutdownTimeout, def.ShutdownTimeout)
	}
}

func TestSupervisorTree_StartsBothLayers(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	data := newStubService("maintenance", 0)
	api := newStubService("http", 0)
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, data, 1)
	waitStarted(t, api, 1)
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) > 0 {
		t.Errorf("services outlived shutdown: %v", report)
	}
}

func TestSupervisorTree_RestartsFailingDataService(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := newStubService("flaky-maintenance", 2)
	api := newStubService("http", 0)
	tree.AddDataService(flaky)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, flaky, 3)
	waitStarted(t, api, 1)

	if got := api.starts.Load(); got != 1 {
		t.Errorf("api layer restarted by a data-layer failure: %d starts", got)
	}

	cancel()
	<-errCh
}

func TestSupervisorTree_Remove(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	svc := newStubService("removable", 0)
	token := tree.Root().Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)
	waitStarted(t, svc, 1)

	if err := tree.Remove(token); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	cancel()
	<-errCh
}
