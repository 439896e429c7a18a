// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the draft, reference-data, storage and API types.

# Draft

RequestDraft is the in-progress project request. JSON uses camelCase field
names, which are also the keys of validation error maps:

	title, audiences, otherAudience, purpose, proofDate, completionDate,
	isMailed, mailDate, budget, printerQuote, meeting, taskTypes,
	otherTaskType, additionalInfo

The Field* constants name them. OtherOption ("Other") is the sentinel that
makes otherAudience / otherTaskType required.

# Reference Data

  - Option: identifier + display title for a multi-select choice
  - Audience, TaskType: seeded reference rows

# Storage Types

  - User, Project, Task, TaskAttribute: rows of the relational store
  - ProjectWithTasks: a stored request with its tasks

# Response Types

  - SubmitResponse: project_id of an accepted request
  - ValidateResponse: normalized draft and field messages
  - VisibilityResponse: fields to display
  - SessionResponse: step position, visible fields and draft of a form session
  - ValidationErrorResponse: field → message map for 422 responses
  - ErrorResponse: error, message
*/
package models
