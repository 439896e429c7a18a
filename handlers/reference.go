// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/middleware"
)

type ReferenceHandler struct {
	store *db.Store
}

func NewReferenceHandler(store *db.Store) *ReferenceHandler {
	return &ReferenceHandler{store: store}
}

// ListAudiences handles GET /audiences
func (h *ReferenceHandler) ListAudiences(w http.ResponseWriter, r *http.Request) {
	options, err := h.store.ListAudiences(r.Context())
	if err != nil {
		slog.Error("failed to list audiences", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, options)
}

// ListTaskTypes handles GET /task-types
func (h *ReferenceHandler) ListTaskTypes(w http.ResponseWriter, r *http.Request) {
	options, err := h.store.ListTaskTypes(r.Context())
	if err != nil {
		slog.Error("failed to list task types", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, options)
}
