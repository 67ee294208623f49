// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinediscover/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load builds the configuration from three layers:
//
//  1. built-in defaults
//  2. optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. environment variables such as TMDB_API_KEY or HTTP_PORT
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	return LoadFrom(findConfigFile())
}

// LoadFrom is Load with an explicit config file path. An empty path skips the file layer.
func LoadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated env values.
var sliceConfigPaths = []string{
	"server.cors_origins",
	"recommend.candidate_kinds",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unlisted variables are ignored so the process environment cannot pollute config.
var envMappings = map[string]string{
	"tmdb_api_key":               "tmdb.api_key",
	"tmdb_base_url":              "tmdb.base_url",
	"tmdb_image_url":             "tmdb.image_url",
	"tmdb_language":              "tmdb.language",
	"tmdb_timeout":               "tmdb.timeout",
	"tmdb_rate_limit":            "tmdb.rate_limit",
	"tmdb_rate_burst":            "tmdb.rate_burst",
	"cache_details_ttl":          "cache.details_ttl",
	"cache_list_ttl":             "cache.list_ttl",
	"cache_genres_ttl":           "cache.genres_ttl",
	"cache_durable":              "cache.durable",
	"discover_page_size":         "discover.default_page_size",
	"discover_max_page_size":     "discover.max_page_size",
	"discover_max_random_page":   "discover.max_random_page",
	"discover_dubbed_min":        "discover.dubbed_min_results",
	"discover_seed":              "discover.seed",
	"recommend_cache_ttl":        "recommend.cache_ttl",
	"recommend_limit":            "recommend.limit",
	"recommend_seed":             "recommend.seed",
	"recommend_candidate_kinds":  "recommend.candidate_kinds",
	"storage_path":               "storage.path",
	"storage_in_memory":          "storage.in_memory",
	"storage_gc_interval":        "storage.gc_interval",
	"http_host":                  "server.host",
	"http_port":                  "server.port",
	"http_shutdown_timeout":      "server.shutdown_timeout",
	"cors_origins":               "server.cors_origins",
	"rate_limit_reqs":            "server.rate_limit_reqs",
	"rate_limit_window":          "server.rate_limit_window",
	"log_level":                  "logging.level",
	"log_format":                 "logging.format",
	"log_caller":                 "logging.caller",
}

// envTransformFunc maps TMDB_API_KEY to tmdb.api_key and so on.
// Returning "" tells koanf to skip the variable.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
