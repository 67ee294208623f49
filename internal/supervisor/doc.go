// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

/*
Package supervisor runs the long-lived services of the server under suture v4.

The tree has two layers so that a misbehaving maintenance task cannot take
the HTTP server down with it:

	RootSupervisor ("cinediscover")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService (cache sweep, BadgerDB value-log GC)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog to the slog bridge of the zerolog logger.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMaintenanceService(responseCache, db, cfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Failure Handling

Each supervisor restarts crashed children with backoff. FailureThreshold
failures within the FailureDecay window put the supervisor into
FailureBackoff before it tries again. On shutdown every service gets
ShutdownTimeout to return from Serve; stragglers are listed by
UnstoppedServiceReport.
*/
package supervisor
