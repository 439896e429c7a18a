// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/middleware"
	"github.com/danielhkuo/project-request/stepper"
	"github.com/danielhkuo/project-request/validation"
)

// writeFormError maps orchestrator and session errors to HTTP responses.
func writeFormError(w http.ResponseWriter, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		middleware.ValidationResponse(w, verrs.Messages())
	case errors.Is(err, form.ErrSubmitPending):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, stepper.ErrOutOfRange):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, form.ErrSessionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	case errors.Is(err, form.ErrSubmissionFailed):
		middleware.ErrorResponse(w, http.StatusBadGateway, "Submission failed, please try again")
	default:
		slog.Error("form operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
