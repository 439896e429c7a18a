// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/middleware"
	"github.com/danielhkuo/project-request/models"
)

type SessionHandler struct {
	sessions *form.Sessions
}

func NewSessionHandler(sessions *form.Sessions) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Create()
	if err != nil {
		writeFormError(w, err)
		return
	}

	slog.Info("form session started", "session_id", session.ID)
	middleware.JSONResponse(w, http.StatusCreated, sessionView(session))
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionView(session))
}

// PutDraft handles PUT /sessions/{id}/draft
func (h *SessionHandler) PutDraft(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var draft models.RequestDraft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return
	}

	session.SetDraft(draft)
	middleware.JSONResponse(w, http.StatusOK, sessionView(session))
}

// Next handles POST /sessions/{id}/next
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Next()
	middleware.JSONResponse(w, http.StatusOK, sessionView(session))
}

// Previous handles POST /sessions/{id}/previous
func (h *SessionHandler) Previous(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}
	session.Previous()
	middleware.JSONResponse(w, http.StatusOK, sessionView(session))
}

// GoTo handles POST /sessions/{id}/goto
func (h *SessionHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.GoToStepRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := session.GoTo(req.Step); err != nil {
		writeFormError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sessionView(session))
}

// Submit handles POST /sessions/{id}/submit
// An accepted submission ends the session.
func (h *SessionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.lookup(w, r)
	if !ok {
		return
	}

	result, err := session.SubmitCurrent(r.Context())
	if err != nil {
		writeFormError(w, err)
		return
	}

	// A concurrent DELETE may have won; the project is stored either way
	_ = h.sessions.Delete(session.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitResponse{
		ProjectID: result.ProjectID,
		Message:   "Request submitted",
	})
}

// Delete handles DELETE /sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.PathValue("id")); err != nil {
		writeFormError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*form.Session, bool) {
	session, err := h.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeFormError(w, err)
		return nil, false
	}
	return session, true
}

func sessionView(s *form.Session) models.SessionResponse {
	index, step := s.Step()
	fields := s.StepFields()
	if fields == nil {
		fields = []string{}
	}

	layout := s.Layout()
	names := make([]string, len(layout))
	for i, st := range layout {
		names[i] = st.Name
	}

	return models.SessionResponse{
		SessionID: s.ID,
		Step:      models.StepView{Index: index, Name: step.Name, Fields: fields},
		Steps:     names,
		Visible:   s.Visible(),
		Draft:     s.Draft(),
	}
}
