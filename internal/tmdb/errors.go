// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream wraps every failure to obtain a usable response: transport
	// errors, timeouts, non-2xx statuses, undecodable bodies and an open breaker.
	ErrUpstream = errors.New("tmdb: upstream failure")

	// ErrMissingCredential is returned by New when no API credential is configured.
	ErrMissingCredential = errors.New("tmdb: api credential is required")

	// ErrInvalidKind is returned for a kind other than movie or series.
	ErrInvalidKind = errors.New("tmdb: invalid kind")
)

// StatusError is a non-2xx response.
type StatusError struct {
	Status  int
	Code    int    // upstream status_code, when the body carried one
	Message string // upstream status_message, or the raw body
}

func (e *StatusError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("tmdb: HTTP %d (code %d): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("tmdb: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is(err, ErrUpstream) match status failures.
func (e *StatusError) Unwrap() error {
	return ErrUpstream
}

// clientFault reports whether err is a 4xx that says nothing about upstream
// health (not found, bad parameters). Rate limiting is not a client fault.
func clientFault(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.Status >= 400 && se.Status < 500 && se.Status != 429
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == 404
}
