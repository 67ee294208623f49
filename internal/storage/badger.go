// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

// Package storage opens the BadgerDB database shared by the durable cache
// layer and the profile store, and runs its value-log garbage collection.
package storage

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"
)

// Config selects where the database lives.
type Config struct {
	Path     string
	InMemory bool

	// GCRatio is the discard ratio passed to RunValueLogGC. Default 0.5.
	GCRatio float64
}

// DB wraps a badger database.
type DB struct {
	*badger.DB
	gcRatio float64
	logger  zerolog.Logger
}

// Open opens (or creates) the database.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Open(cfg Config, logger zerolog.Logger) (*DB, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("storage: path is required for an on-disk database")
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = badgerLogger{logger: logger.With().Str("component", "badger").Logger()}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	ratio := cfg.GCRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	logger.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("storage opened")
	return &DB{DB: db, gcRatio: ratio, logger: logger}, nil
}

// RunGC rewrites value-log files until badger reports nothing left to reclaim.
// In-memory databases have no value log and return immediately.
func (d *DB) RunGC() error {
	if d.Opts().InMemory {
		return nil
	}
	for {
		err := d.RunValueLogGC(d.gcRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log GC: %w", err)
		}
	}
}

// badgerLogger routes badger's internal logging into zerolog. Info and debug
// output is demoted so routine compaction chatter stays out of production logs.
type badgerLogger struct {
	logger zerolog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Trace().Msgf(format, args...)
}
