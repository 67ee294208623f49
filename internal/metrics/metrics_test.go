// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("test_discover", "ok"))
	RecordUpstream("test_discover", "ok", 20*time.Millisecond)
	after := testutil.ToFloat64(UpstreamRequests.WithLabelValues("test_discover", "ok"))

	if after-before != 1 {
		t.Errorf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestRecordBreakerTransition(t *testing.T) {
	RecordBreakerTransition("test-breaker", "closed", "open", 2)

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != 2 {
		t.Errorf("state gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendResults.WithLabelValues("guest"))
	RecordRecommendation("guest", 0, 0)
	if got := testutil.ToFloat64(RecommendResults.WithLabelValues("guest")) - before; got != 1 {
		t.Errorf("guest feeds delta = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/test", 200, time.Millisecond)
	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/test", "200")); got < 1 {
		t.Errorf("api requests = %v, want >= 1", got)
	}
}
