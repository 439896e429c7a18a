// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs one line per request with method, path, status, client IP and
duration_ms. 5xx responses are logged at error level.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationResponse(w, errs.Messages())

ParseJSONBody rejects unknown fields, so a misspelled draft field is a
400 rather than a silently empty value:

	var draft models.RequestDraft
	if err := middleware.ParseJSONBody(r, &draft); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
