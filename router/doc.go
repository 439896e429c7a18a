// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the project request API.

# Route Registration

	mux := router.NewRouter(db, cfg)

Options replace the clock used by date rules and the metrics registry:

	mux := router.NewRouter(db, cfg, router.WithClock(fixedToday), router.WithMetrics(m))

NewHandler wraps the same routes in middleware.CORS and answers OPTIONS
preflights. The server uses it:

	server := http.Server{Handler: router.NewHandler(db, cfg)}

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Reference data:

	GET /audiences
	GET /task-types

Stateless requests:

	POST /requests/validate   - Validate a draft
	POST /requests/visibility - Fields displayed for a draft
	POST /requests            - Submit a draft
	GET  /requests/{id}       - Stored project

Form sessions:

	POST   /sessions
	GET    /sessions/{id}
	PUT    /sessions/{id}/draft
	POST   /sessions/{id}/next
	POST   /sessions/{id}/previous
	POST   /sessions/{id}/goto
	POST   /sessions/{id}/submit
	DELETE /sessions/{id}

# Handler Initialization

Every orchestrator the router builds submits to a db.Store and reports to
the same metrics.Metrics.
*/
package router
