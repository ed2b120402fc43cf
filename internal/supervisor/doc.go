// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

/*
Package supervisor provides Suture-based process supervision for FocusNest.

The process runs as a two-layer supervision tree:

	focusnest (root)
	├── data-layer
	│   └── archive-gc     periodic Badger value-log compaction
	└── api-layer
	    └── http-server    the Chi-routed API

A crash in one layer is restarted by its own supervisor without touching
the other: a wedged archive GC pass never takes the HTTP server down, and
an HTTP handler panic never interrupts archive maintenance.

Supervisor events are logged through the sutureslog adapter, which takes
an *slog.Logger; logging.NewSlogLogger bridges it back onto the process
zerolog sink.

# Usage

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewArchiveGCService(archive, cfg.Store.GCInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)

Service wrappers that adapt components to the suture.Service interface
live in the services subpackage.
*/
package supervisor
