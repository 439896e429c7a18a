// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form drives a project request from empty draft to submission.

# Orchestrator

An Orchestrator owns one draft and one step position:

	o, err := form.New(store, form.WithLogger(logger))
	o.Update(func(d *models.RequestDraft) { d.Title = "Homecoming Banners" })
	o.Next()
	result, err := o.SubmitCurrent(ctx)

Submit validates the draft with the validation package. On failure it
returns validation.Errors and leaves everything untouched. On success the
normalized draft is passed once to the Submitter; a Submitter error comes back
as *SubmissionError. A second Submit while one is in flight returns
ErrSubmitPending.

Step navigation is never gated on validation.

# Steps

DefaultSteps groups the draft fields into the pages Project, Schedule,
Budget, Tasks and Review. StepForField and FirstInvalidStep map validation
errors back to a page.

# Sessions

Sessions keeps orchestrators in memory under a random ID for the HTTP
session endpoints.
*/
package form
