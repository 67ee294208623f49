// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper drops expired entries and reports how many it removed.
// Satisfied by *cache.Cache.
type Sweeper interface {
	Sweep() int
}

// GarbageCollector reclaims storage space. Satisfied by *storage.DB.
type GarbageCollector interface {
	RunGC() error
}

// MaintenanceConfig sets how often each task runs. A zero interval takes
// the default; a nil dependency disables its task.
type MaintenanceConfig struct {
	SweepInterval time.Duration // default 5m
	GCInterval    time.Duration // default 1h
}

// MaintenanceService periodically sweeps the response cache and runs
// value-log garbage collection on the durable store.
type MaintenanceService struct {
	cache  Sweeper
	db     GarbageCollector
	config MaintenanceConfig
	logger zerolog.Logger
	name   string
}

// NewMaintenanceService creates the maintenance loop. Either dependency may be nil.
//
//nolint:gocritic // zerolog.Logger is passed by value
func NewMaintenanceService(cache Sweeper, db GarbageCollector, cfg MaintenanceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	if cfg.GCInterval <= 0 {
		cfg.GCInterval = time.Hour
	}
	return &MaintenanceService{
		cache:  cache,
		db:     db,
		config: cfg,
		logger: logger.With().Str("service", "maintenance").Logger(),
		name:   "maintenance-service",
	}
}

// Serve implements suture.Service. Task failures are logged and retried on
// the next tick; only context cancellation ends the loop.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Info().
		Dur("sweep_interval", s.config.SweepInterval).
		Dur("gc_interval", s.config.GCInterval).
		Msg("maintenance service starting")

	sweep := time.NewTicker(s.config.SweepInterval)
	defer sweep.Stop()
	gc := time.NewTicker(s.config.GCInterval)
	defer gc.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("maintenance service shutting down")
			return ctx.Err()

		case <-sweep.C:
			s.sweep()

		case <-gc.C:
			s.collect()
		}
	}
}

func (s *MaintenanceService) sweep() {
	if s.cache == nil {
		return
	}
	if removed := s.cache.Sweep(); removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired cache entries swept")
	}
}

func (s *MaintenanceService) collect() {
	if s.db == nil {
		return
	}
	start := time.Now()
	if err := s.db.RunGC(); err != nil {
		s.logger.Warn().Err(err).Msg("value log GC failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("value log GC complete")
}

// String names the service in supervisor events.
func (s *MaintenanceService) String() string {
	return s.name
}
