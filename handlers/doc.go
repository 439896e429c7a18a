// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the project request API.

# Handler Types

  - ReferenceHandler: audience and task type choices
  - RequestHandler: stateless validate, visibility and submit
  - SessionHandler: step-by-step form sessions

Each takes its collaborators at construction:

	requestHandler := handlers.NewRequestHandler(store, newForm, time.Now)

# Stateless Requests

	POST /requests/validate   → Validate (normalized draft + messages)
	POST /requests/visibility → Visibility (displayed fields)
	POST /requests            → Submit
	GET  /requests/{id}       → GetProject

# Form Sessions

A session holds a draft and a step position in memory:

	POST   /sessions               → Create
	GET    /sessions/{id}          → Get
	PUT    /sessions/{id}/draft    → PutDraft
	POST   /sessions/{id}/next     → Next
	POST   /sessions/{id}/previous → Previous
	POST   /sessions/{id}/goto     → GoTo {"step": k}
	POST   /sessions/{id}/submit   → Submit (ends the session on success)
	DELETE /sessions/{id}          → Delete

Navigation never validates; only submit does.

# Draft Payloads

Dates may be calendar dates, as an HTML date input sends them, or RFC 3339
timestamps:

	{"proofDate": "2026-10-21", "completionDate": "2026-10-28T09:00:00-04:00"}

A body that does not decode, including a malformed date, gets a 400 whose
message includes the decoder error.

# Error Mapping

	validation errors      → 422 with one message per field
	step out of range      → 400
	unknown session        → 404
	submission in progress → 409
	store failure          → 502
*/
package handlers
