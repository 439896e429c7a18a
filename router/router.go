// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/project-request/cliparse"
	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/handlers"
	"github.com/danielhkuo/project-request/metrics"
	"github.com/danielhkuo/project-request/middleware"
)

type options struct {
	now     func() time.Time
	metrics *metrics.Metrics
}

// Option configures NewRouter.
type Option func(*options)

// WithClock sets the source of "today" for date rules.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithMetrics uses m instead of a fresh registry.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewHandler is NewRouter behind the CORS middleware, for browser clients.
func NewHandler(conn *sql.DB, cfg cliparse.Config, opts ...Option) http.Handler {
	return middleware.CORS(NewRouter(conn, cfg, opts...))
}

func NewRouter(conn *sql.DB, cfg cliparse.Config, opts ...Option) *http.ServeMux {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = metrics.New()
	}

	store := db.NewStore(conn)
	newForm := func() (*form.Orchestrator, error) {
		return form.New(store,
			form.WithClock(o.now),
			form.WithLogger(slog.Default()),
			form.WithRecorder(o.metrics),
		)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	referenceHandler := handlers.NewReferenceHandler(store)
	requestHandler := handlers.NewRequestHandler(store, newForm, o.now)
	sessionHandler := handlers.NewSessionHandler(form.NewSessions(newForm))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	mux.Handle("GET /metrics", o.metrics.Handler())

	// Reference data
	mux.HandleFunc("GET /audiences", middleware.WithLogging(referenceHandler.ListAudiences))
	mux.HandleFunc("GET /task-types", middleware.WithLogging(referenceHandler.ListTaskTypes))

	// Stateless requests
	mux.HandleFunc("POST /requests/validate", middleware.WithLogging(requestHandler.Validate))
	mux.HandleFunc("POST /requests/visibility", middleware.WithLogging(requestHandler.Visibility))
	mux.HandleFunc("POST /requests", middleware.WithLogging(requestHandler.Submit))
	mux.HandleFunc("GET /requests/{id}", middleware.WithLogging(requestHandler.GetProject))

	// Form sessions
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("PUT /sessions/{id}/draft", middleware.WithLogging(sessionHandler.PutDraft))
	mux.HandleFunc("POST /sessions/{id}/next", middleware.WithLogging(sessionHandler.Next))
	mux.HandleFunc("POST /sessions/{id}/previous", middleware.WithLogging(sessionHandler.Previous))
	mux.HandleFunc("POST /sessions/{id}/goto", middleware.WithLogging(sessionHandler.GoTo))
	mux.HandleFunc("POST /sessions/{id}/submit", middleware.WithLogging(sessionHandler.Submit))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.Delete))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("project-request API v1"))
	})

	slog.Debug("router ready", "database_type", cfg.DatabaseType)
	return mux
}
