// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinediscover/internal/catalog"
	"github.com/tomtom215/cinediscover/internal/validation"
)

// UserIDHeader carries the caller's identity, set by the authenticating proxy.
const UserIDHeader = "X-User-ID"

// guestUserID is the explicit guest marker.
const guestUserID = "guest"

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 * 1024

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9._@:-]{1,128}$`)

var errInvalidUserID = errors.New("invalid user id")

// userFromRequest returns the caller's user id and whether the caller is
// authenticated. A malformed id is an error, a missing one is a guest.
func userFromRequest(r *http.Request) (string, bool, error) {
	id := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if id == "" || strings.EqualFold(id, guestUserID) {
		return "", false, nil
	}
	if !userIDPattern.MatchString(id) {
		return "", false, errInvalidUserID
	}
	return id, true, nil
}

func queryInt(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return v, nil
}

func queryFloat(q url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	return v, nil
}

func queryBool(q url.Values, name string, def bool) (bool, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be true or false", name)
	}
	return v, nil
}

// pathKind parses the {kind} URL parameter.
func pathKind(r *http.Request) (catalog.Kind, error) {
	return catalog.ParseKind(chi.URLParam(r, "kind"))
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

// decodeJSON decodes a bounded request body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator. It returns
// nil when s is valid.
func validateRequest(s interface{}) *APIError {
	verr := validation.ValidateStruct(s)
	if verr == nil {
		return nil
	}
	e := verr.ToAPIError()
	return &APIError{Code: e.Code, Message: e.Message, Details: e.Details}
}

func respondValidation(w http.ResponseWriter, r *http.Request, apiErr *APIError) {
	respondJSON(w, r, http.StatusBadRequest, &APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now()},
		Error:    apiErr,
	})
}

// sanitizeLogValue strips control characters so client input cannot forge log lines.
func sanitizeLogValue(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
