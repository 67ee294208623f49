// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Kind     string  `query:"kind" validate:"required,oneof=movie series"`
	Language string  `query:"language" validate:"omitempty,langcode"`
	YearFrom int     `query:"year_from" validate:"omitempty,gte=1870,lte=2100"`
	YearTo   int     `query:"year_to" validate:"omitempty,gtefield=YearFrom"`
	Rating   float64 `json:"rating" validate:"gte=0,lte=10"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       sampleRequest
		wantField string
		wantTag   string
	}{
		{"valid", sampleRequest{Kind: "movie", Language: "fr", YearFrom: 1990, YearTo: 2000, Rating: 7}, "", ""},
		{"region code", sampleRequest{Kind: "series", Language: "pt-BR"}, "", ""},
		{"missing kind", sampleRequest{}, "kind", "required"},
		{"unknown kind", sampleRequest{Kind: "book"}, "kind", "oneof"},
		{"bad language", sampleRequest{Kind: "movie", Language: "French"}, "language", "langcode"},
		{"inverted years", sampleRequest{Kind: "movie", YearFrom: 2000, YearTo: 1990}, "year_to", "gtefield"},
		{"rating too high", sampleRequest{Kind: "movie", Rating: 11}, "rating", "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verr := ValidateStruct(&tt.req)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			if verr.Fields[0].Field != tt.wantField || verr.Fields[0].Tag != tt.wantTag {
				t.Errorf("got %s/%s, want %s/%s", verr.Fields[0].Field, verr.Fields[0].Tag, tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&sampleRequest{Kind: "book", Rating: -1})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "kind must be one of") {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("expected per-field details for multiple failures")
	}
}
