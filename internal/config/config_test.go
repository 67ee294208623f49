// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.TMDB.Timeout != 5*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 5s", cfg.TMDB.Timeout)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("TMDB.Language = %q, want en-US", cfg.TMDB.Language)
	}
	if cfg.Cache.DetailsTTL != 15*time.Minute {
		t.Errorf("Cache.DetailsTTL = %v, want 15m", cfg.Cache.DetailsTTL)
	}
	if cfg.Recommend.CacheTTL != 6*time.Hour {
		t.Errorf("Recommend.CacheTTL = %v, want 6h", cfg.Recommend.CacheTTL)
	}
	if cfg.Recommend.Limit != 20 || cfg.Recommend.MaxGenres != 3 || cfg.Recommend.RecentItems != 3 {
		t.Errorf("unexpected recommend limits: %+v", cfg.Recommend)
	}
	if cfg.Discover.DubbedMinResults != 1 {
		t.Errorf("Discover.DubbedMinResults = %d, want 1", cfg.Discover.DubbedMinResults)
	}
}

func TestLoadFrom_RequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	_, err := LoadFrom("")
	if err == nil {
		t.Fatal("expected error without TMDB_API_KEY")
	}
	if !strings.Contains(err.Error(), "TMDB_API_KEY") {
		t.Errorf("error should name the missing variable, got %v", err)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_TIMEOUT", "3s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom("")
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.TMDB.APIKey != "secret" {
		t.Errorf("APIKey = %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.TMDB.Timeout)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadFrom_FileLayer(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
tmdb:
  api_key: from-file
  language: fr-FR
recommend:
  limit: 10
storage:
  in_memory: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("env should win over file, got %q", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.Language != "fr-FR" {
		t.Errorf("Language = %q, want fr-FR", cfg.TMDB.Language)
	}
	if cfg.Recommend.Limit != 10 {
		t.Errorf("Recommend.Limit = %d, want 10", cfg.Recommend.Limit)
	}
	if !cfg.Storage.InMemory {
		t.Error("expected storage.in_memory from file")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"zero timeout", func(c *Config) { c.TMDB.Timeout = 0 }, "TMDB_TIMEOUT"},
		{"relative base url", func(c *Config) { c.TMDB.BaseURL = "/3" }, "TMDB_BASE_URL"},
		{"weights off", func(c *Config) { c.Recommend.RandomW = 0.5 }, "sum to 1"},
		{"bad kind", func(c *Config) { c.Recommend.CandidateKinds = []string{"podcast"} }, "unknown kind"},
		{"random page too large", func(c *Config) { c.Discover.MaxRandomPage = 900 }, "max_random_page"},
		{"bad language", func(c *Config) { c.TMDB.Language = "not a locale" }, "TMDB_LANGUAGE"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			cfg.TMDB.APIKey = "k"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CanonicalizesLanguage(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.TMDB.APIKey = "k"
	cfg.TMDB.Language = "pt-br"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.TMDB.Language != "pt-BR" {
		t.Errorf("Language = %q, want pt-BR", cfg.TMDB.Language)
	}
}
