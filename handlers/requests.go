// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/middleware"
	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/validation"
	"github.com/danielhkuo/project-request/visibility"
)

// FormFactory builds a fresh orchestrator wired to the store.
type FormFactory func() (*form.Orchestrator, error)

type RequestHandler struct {
	store   *db.Store
	newForm FormFactory
	now     func() time.Time
}

func NewRequestHandler(store *db.Store, newForm FormFactory, now func() time.Time) *RequestHandler {
	return &RequestHandler{store: store, newForm: newForm, now: now}
}

// Validate handles POST /requests/validate
// Always 200; the body tells whether the draft would be accepted.
func (h *RequestHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var draft models.RequestDraft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	normalized, errs := validation.Validate(draft, h.now())
	middleware.JSONResponse(w, http.StatusOK, models.ValidateResponse{
		Valid:  errs == nil,
		Draft:  normalized,
		Errors: errs.Messages(),
	})
}

// Visibility handles POST /requests/visibility
func (h *RequestHandler) Visibility(w http.ResponseWriter, r *http.Request) {
	var draft models.RequestDraft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VisibilityResponse{
		Fields: visibility.Fields(draft),
	})
}

// Submit handles POST /requests
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var draft models.RequestDraft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	o, err := h.newForm()
	if err != nil {
		writeFormError(w, err)
		return
	}

	result, err := o.Submit(r.Context(), draft)
	if err != nil {
		writeFormError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		ProjectID: result.ProjectID,
		Message:   "Request submitted",
	})
}

// GetProject handles GET /requests/{id}
func (h *RequestHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	project, err := h.store.GetProject(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		slog.Error("failed to load project", "project_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, project)
}
