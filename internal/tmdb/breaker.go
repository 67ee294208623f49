// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package tmdb

import (
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/cinediscover/internal/metrics"
)

const breakerName = "tmdb-api"

// newBreaker builds the upstream circuit breaker. It opens once at least
// BreakerMinRequests calls in the current interval have failed at
// BreakerFailureRatio or more, and probes again after BreakerOpenTimeout.
// Client faults such as 404 count as successes.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBreaker(cfg *Config, logger zerolog.Logger) *gobreaker.CircuitBreaker[[]byte] {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	minRequests := cfg.BreakerMinRequests
	ratio := cfg.BreakerFailureRatio

	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerOpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= ratio {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening upstream circuit")
				return true
			}
			return false
		},

		IsSuccessful: func(err error) bool {
			return err == nil || clientFault(err)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String(), stateToFloat(to))
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// BreakerState returns the current breaker state as closed, half-open or open.
func (c *Client) BreakerState() string {
	return c.cb.State().String()
}
