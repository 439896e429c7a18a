// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionFailed = errors.New("submission failed")
	ErrSubmitPending    = errors.New("a submission is already in progress")
	ErrSessionNotFound  = errors.New("form session not found")
)

// SubmissionError carries the submission collaborator's failure unchanged.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	if e == nil || e.Cause == nil {
		return ErrSubmissionFailed.Error()
	}
	return fmt.Sprintf("%s: %v", ErrSubmissionFailed, e.Cause)
}

func (e *SubmissionError) Unwrap() error { return e.Cause }

// Is matches ErrSubmissionFailed in addition to the wrapped cause.
func (e *SubmissionError) Is(target error) bool {
	return target == ErrSubmissionFailed
}
