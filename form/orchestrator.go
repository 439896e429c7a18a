// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/stepper"
	"github.com/danielhkuo/project-request/validation"
	"github.com/danielhkuo/project-request/visibility"
)

// Submitter receives accepted drafts and returns the stored project ID.
type Submitter interface {
	Submit(ctx context.Context, draft models.RequestDraft) (string, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, draft models.RequestDraft) (string, error)

func (f SubmitterFunc) Submit(ctx context.Context, draft models.RequestDraft) (string, error) {
	return f(ctx, draft)
}

// Recorder observes orchestrator events. metrics.Metrics implements it.
type Recorder interface {
	SubmitOutcome(outcome string)
	ValidationFailed(errs validation.Errors)
	Navigated(op string)
}

// Submission outcomes passed to Recorder.SubmitOutcome
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomePending  = "pending"
)

// Result describes an accepted submission.
type Result struct {
	ProjectID string              `json:"project_id"`
	Draft     models.RequestDraft `json:"draft"`
}

// Orchestrator owns one form session: a draft, its step position, and the
// submission of the draft to a Submitter.
type Orchestrator struct {
	mu     sync.Mutex
	draft  models.RequestDraft
	steps  *stepper.State
	layout []Step

	submitter Submitter
	pending   atomic.Bool

	now      func() time.Time
	logger   *slog.Logger
	recorder Recorder
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock sets the source of "today" used by date rules.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithLogger sets a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithRecorder registers an event recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = r
	}
}

// WithSteps replaces DefaultSteps.
func WithSteps(layout []Step) Option {
	return func(o *Orchestrator) {
		o.layout = layout
	}
}

// WithDraft seeds the session with an initial draft.
func WithDraft(d models.RequestDraft) Option {
	return func(o *Orchestrator) {
		o.draft = d.Clone()
	}
}

// New creates an orchestrator positioned on the first step with an empty draft.
func New(submitter Submitter, opts ...Option) (*Orchestrator, error) {
	if submitter == nil {
		return nil, fmt.Errorf("submitter is required")
	}
	o := &Orchestrator{
		submitter: submitter,
		layout:    DefaultSteps,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}

	steps, err := stepper.New(stepNames(o.layout)...)
	if err != nil {
		return nil, fmt.Errorf("invalid step layout: %w", err)
	}
	o.steps = steps
	return o, nil
}

// Draft returns a copy of the current draft.
func (o *Orchestrator) Draft() models.RequestDraft {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.draft.Clone()
}

// SetDraft replaces the current draft.
func (o *Orchestrator) SetDraft(d models.RequestDraft) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.draft = d.Clone()
}

// Update applies a field change to the current draft.
func (o *Orchestrator) Update(fn func(d *models.RequestDraft)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fn(&o.draft)
}

// Visible returns the fields displayed for the current draft.
func (o *Orchestrator) Visible() []string {
	return visibility.Fields(o.Draft())
}

// Layout returns the step layout.
func (o *Orchestrator) Layout() []Step {
	return append([]Step(nil), o.layout...)
}

// Step returns the index and definition of the current step.
func (o *Orchestrator) Step() (int, Step) {
	o.mu.Lock()
	defer o.mu.Unlock()
	i := o.steps.Index()
	return i, o.layout[i]
}

// StepFields returns the visible fields of the current step.
func (o *Orchestrator) StepFields() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []string
	for _, f := range o.layout[o.steps.Index()].Fields {
		if visibility.Visible(o.draft, f) {
			out = append(out, f)
		}
	}
	return out
}

// Next moves forward one step. The current step's fields are not validated.
func (o *Orchestrator) Next() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.steps.Next()
	o.recorder.Navigated("next")
	return o.steps.Index()
}

// Previous moves back one step.
func (o *Orchestrator) Previous() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.steps.Previous()
	o.recorder.Navigated("previous")
	return o.steps.Index()
}

// GoTo jumps to step k; see stepper.State.GoTo.
func (o *Orchestrator) GoTo(k int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.steps.GoTo(k); err != nil {
		o.logger.Warn("navigation out of range", "step", k, "steps", o.steps.Len())
		return err
	}
	o.recorder.Navigated("goto")
	return nil
}

// Validate runs the rule set against the current draft without submitting.
func (o *Orchestrator) Validate() (models.RequestDraft, validation.Errors) {
	return validation.Validate(o.Draft(), o.now())
}

// FieldError returns the message for field on the current draft, or "" when
// the field passes. Used for feedback while filling a step; it never blocks
// navigation.
func (o *Orchestrator) FieldError(field string) string {
	if kind, ok := validation.CheckField(field, o.Draft(), o.now()); !ok {
		return validation.Message(field, kind)
	}
	return ""
}

// Pending reports whether a submission is in flight.
func (o *Orchestrator) Pending() bool {
	return o.pending.Load()
}

// SubmitCurrent submits the session's own draft.
func (o *Orchestrator) SubmitCurrent(ctx context.Context) (Result, error) {
	return o.Submit(ctx, o.Draft())
}

// Submit validates draft and, when valid, hands a copy of the normalized
// draft to the Submitter exactly once.
//
// Errors:
//   - validation.Errors when any rule fails; the Submitter is not called
//   - *SubmissionError (matches ErrSubmissionFailed) when the Submitter fails
//   - ErrSubmitPending when another Submit on this orchestrator is in flight
func (o *Orchestrator) Submit(ctx context.Context, draft models.RequestDraft) (Result, error) {
	if !o.pending.CompareAndSwap(false, true) {
		o.recorder.SubmitOutcome(OutcomePending)
		return Result{}, ErrSubmitPending
	}
	defer o.pending.Store(false)

	normalized, errs := validation.Validate(draft, o.now())
	if errs != nil {
		o.recorder.SubmitOutcome(OutcomeInvalid)
		o.recorder.ValidationFailed(errs)
		o.logger.Info("request rejected", "fields", errs.Fields())
		return Result{}, errs
	}

	projectID, err := o.submitter.Submit(ctx, normalized.Clone())
	if err != nil {
		o.recorder.SubmitOutcome(OutcomeFailed)
		o.logger.Error("submission failed", "error", err)
		return Result{}, &SubmissionError{Cause: err}
	}

	o.recorder.SubmitOutcome(OutcomeAccepted)
	o.logger.Info("request submitted", "project_id", projectID, "title", normalized.Title)
	return Result{ProjectID: projectID, Draft: normalized}, nil
}

type nopRecorder struct{}

func (nopRecorder) SubmitOutcome(string)               {}
func (nopRecorder) ValidationFailed(validation.Errors) {}
func (nopRecorder) Navigated(string)                   {}
