// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/validation"
)

// Navigation choices offered after each step
const (
	navNext   = "Next"
	navBack   = "Back"
	navJump   = "Jump to step"
	navSubmit = "Submit"
	navCancel = "Cancel"
)

const dateLayout = time.DateOnly

var labels = map[string]string{
	models.FieldTitle:          "Project title",
	models.FieldAudiences:      "Audiences",
	models.FieldOtherAudience:  "Other audience",
	models.FieldPurpose:        "Purpose",
	models.FieldProofDate:      "Proof date (YYYY-MM-DD)",
	models.FieldCompletionDate: "Completion date (YYYY-MM-DD)",
	models.FieldIsMailed:       "Will this be mailed?",
	models.FieldMailDate:       "Mail date (YYYY-MM-DD)",
	models.FieldBudget:         "Budget",
	models.FieldPrinterQuote:   "Request a printer quote?",
	models.FieldMeeting:        "Schedule a kickoff meeting?",
	models.FieldTaskTypes:      "Task types",
	models.FieldOtherTaskType:  "Other task type",
	models.FieldAdditionalInfo: "Additional information",
}

// Wizard walks a form orchestrator step by step in a terminal.
type Wizard struct {
	driver    PromptDriver
	form      *form.Orchestrator
	audiences []models.Option
	taskTypes []models.Option
	out       io.Writer
}

// New creates a wizard over o. The option lists back the multi-selects.
func New(driver PromptDriver, o *form.Orchestrator, audiences, taskTypes []models.Option, out io.Writer) *Wizard {
	return &Wizard{
		driver:    driver,
		form:      o,
		audiences: audiences,
		taskTypes: taskTypes,
		out:       out,
	}
}

// Run prompts until the draft is accepted or the user cancels.
// On success the summary is written to out.
func Run(ctx context.Context, driver PromptDriver, o *form.Orchestrator, audiences, taskTypes []models.Option, out io.Writer) (form.Result, error) {
	return New(driver, o, audiences, taskTypes, out).Run(ctx)
}

func (w *Wizard) Run(ctx context.Context) (form.Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return form.Result{}, err
		}

		index, step := w.form.Step()
		if err := w.driver.Info(ctx, fmt.Sprintf("== Step %d of %d: %s ==", index+1, len(w.form.Layout()), step.Name)); err != nil {
			return form.Result{}, err
		}
		if err := w.promptStep(ctx); err != nil {
			return form.Result{}, err
		}

		choice, err := w.navigate(ctx)
		if err != nil {
			return form.Result{}, err
		}
		if choice != navSubmit {
			continue
		}

		result, err := w.form.SubmitCurrent(ctx)
		if err == nil {
			return result, w.printSummary(result)
		}

		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			if err := w.reportInvalid(ctx, verrs); err != nil {
				return form.Result{}, err
			}
		case errors.Is(err, form.ErrSubmissionFailed):
			if err := w.driver.Info(ctx, err.Error()+"; please try again"); err != nil {
				return form.Result{}, err
			}
		default:
			return form.Result{}, err
		}
	}
}

// promptStep asks for each visible field of the current step once. Answers
// can reveal fields, so visibility is recomputed after every prompt. A
// failing answer gets a hint but is kept; only submit rejects the draft.
func (w *Wizard) promptStep(ctx context.Context) error {
	asked := make(map[string]bool)
	for {
		var next string
		for _, field := range w.form.StepFields() {
			if !asked[field] {
				next = field
				break
			}
		}
		if next == "" {
			return nil
		}
		if err := w.promptField(ctx, next); err != nil {
			return err
		}
		asked[next] = true
		if msg := w.form.FieldError(next); msg != "" {
			if err := w.driver.Info(ctx, "  ! "+msg); err != nil {
				return err
			}
		}
	}
}

func (w *Wizard) promptField(ctx context.Context, field string) error {
	d := w.form.Draft()
	label := labels[field]

	switch field {
	case models.FieldTitle, models.FieldPurpose, models.FieldOtherAudience,
		models.FieldOtherTaskType, models.FieldBudget:
		current := textValue(d, field)
		answer, err := w.driver.Input(ctx, InputConfig{Message: label, Default: current})
		if err != nil {
			return err
		}
		w.form.Update(func(d *models.RequestDraft) { setText(d, field, answer) })

	case models.FieldAdditionalInfo:
		answer, err := w.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: d.AdditionalInfo})
		if err != nil {
			return err
		}
		w.form.Update(func(d *models.RequestDraft) { d.AdditionalInfo = answer })

	case models.FieldAudiences, models.FieldTaskTypes:
		options, current := w.audiences, d.Audiences
		if field == models.FieldTaskTypes {
			options, current = w.taskTypes, d.TaskTypes
		}
		ids, err := w.multiSelect(ctx, label, options, current)
		if err != nil {
			return err
		}
		w.form.Update(func(d *models.RequestDraft) {
			if field == models.FieldTaskTypes {
				d.TaskTypes = ids
			} else {
				d.Audiences = ids
			}
		})

	case models.FieldIsMailed, models.FieldPrinterQuote, models.FieldMeeting:
		answer, err := w.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: boolValue(d, field)})
		if err != nil {
			return err
		}
		w.form.Update(func(d *models.RequestDraft) { setBool(d, field, answer) })

	case models.FieldProofDate, models.FieldCompletionDate, models.FieldMailDate:
		date, err := w.promptDate(ctx, label, dateValue(d, field))
		if err != nil {
			return err
		}
		w.form.Update(func(d *models.RequestDraft) { setDate(d, field, date) })

	default:
		return fmt.Errorf("no prompt for field %q", field)
	}
	return nil
}

func (w *Wizard) multiSelect(ctx context.Context, label string, options []models.Option, current []string) ([]string, error) {
	titles := make([]string, len(options))
	var defaults []int
	for i, opt := range options {
		titles[i] = opt.Title
		if slices.Contains(current, opt.ID) {
			defaults = append(defaults, i)
		}
	}

	indices, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  label,
		Options:  titles,
		Defaults: defaults,
		PageSize: 12,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(options) {
			ids = append(ids, options[i].ID)
		}
	}
	return ids, nil
}

// promptDate re-asks until the answer is blank or a valid date.
func (w *Wizard) promptDate(ctx context.Context, label string, current *time.Time) (*time.Time, error) {
	def := ""
	if current != nil {
		def = current.Format(dateLayout)
	}
	for {
		answer, err := w.driver.Input(ctx, InputConfig{Message: label, Default: def})
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return nil, nil
		}
		t, err := time.ParseInLocation(dateLayout, answer, time.Local)
		if err == nil {
			return &t, nil
		}
		if err := w.driver.Info(ctx, fmt.Sprintf("%q is not a date, use YYYY-MM-DD", answer)); err != nil {
			return nil, err
		}
	}
}

func (w *Wizard) navigate(ctx context.Context) (string, error) {
	index, _ := w.form.Step()
	layout := w.form.Layout()

	var choices []string
	if index < len(layout)-1 {
		choices = append(choices, navNext)
	}
	if index > 0 {
		choices = append(choices, navBack)
	}
	choices = append(choices, navJump, navSubmit, navCancel)

	picked, err := w.driver.Select(ctx, SelectConfig{Message: "What next?", Options: choices})
	if err != nil {
		return "", err
	}
	if picked < 0 || picked >= len(choices) {
		return "", fmt.Errorf("invalid navigation choice %d", picked)
	}

	switch choice := choices[picked]; choice {
	case navNext:
		w.form.Next()
	case navBack:
		w.form.Previous()
	case navJump:
		names := make([]string, len(layout))
		for i, st := range layout {
			names[i] = st.Name
		}
		k, err := w.driver.Select(ctx, SelectConfig{Message: "Jump to", Options: names, DefaultIndex: index})
		if err != nil {
			return "", err
		}
		if err := w.form.GoTo(k); err != nil {
			return "", err
		}
	case navCancel:
		return "", ErrAborted
	}
	return choices[picked], nil
}

// reportInvalid lists every message and returns to the first step holding
// an invalid field.
func (w *Wizard) reportInvalid(ctx context.Context, verrs validation.Errors) error {
	if err := w.driver.Info(ctx, "Please fix the following:"); err != nil {
		return err
	}
	messages := verrs.Messages()
	for _, field := range verrs.Fields() {
		if err := w.driver.Info(ctx, "  - "+messages[field]); err != nil {
			return err
		}
	}
	if k := form.FirstInvalidStep(w.form.Layout(), verrs.Fields()); k >= 0 {
		return w.form.GoTo(k)
	}
	return nil
}

func textValue(d models.RequestDraft, field string) string {
	switch field {
	case models.FieldTitle:
		return d.Title
	case models.FieldPurpose:
		return d.Purpose
	case models.FieldOtherAudience:
		return d.OtherAudience
	case models.FieldOtherTaskType:
		return d.OtherTaskType
	case models.FieldBudget:
		return d.Budget
	}
	return ""
}

func setText(d *models.RequestDraft, field, v string) {
	switch field {
	case models.FieldTitle:
		d.Title = v
	case models.FieldPurpose:
		d.Purpose = v
	case models.FieldOtherAudience:
		d.OtherAudience = v
	case models.FieldOtherTaskType:
		d.OtherTaskType = v
	case models.FieldBudget:
		d.Budget = v
	}
}

func boolValue(d models.RequestDraft, field string) bool {
	switch field {
	case models.FieldIsMailed:
		return d.IsMailed
	case models.FieldPrinterQuote:
		return d.PrinterQuote
	case models.FieldMeeting:
		return d.Meeting
	}
	return false
}

func setBool(d *models.RequestDraft, field string, v bool) {
	switch field {
	case models.FieldIsMailed:
		d.IsMailed = v
	case models.FieldPrinterQuote:
		d.PrinterQuote = v
	case models.FieldMeeting:
		d.Meeting = v
	}
}

func dateValue(d models.RequestDraft, field string) *time.Time {
	switch field {
	case models.FieldProofDate:
		return d.ProofDate
	case models.FieldCompletionDate:
		return d.CompletionDate
	case models.FieldMailDate:
		return d.MailDate
	}
	return nil
}

func setDate(d *models.RequestDraft, field string, v *time.Time) {
	switch field {
	case models.FieldProofDate:
		d.ProofDate = v
	case models.FieldCompletionDate:
		d.CompletionDate = v
	case models.FieldMailDate:
		d.MailDate = v
	}
}
