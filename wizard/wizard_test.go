// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/models"
)

var errScriptExhausted = errors.New("script exhausted")

// scriptedDriver answers prompts from fixed queues, one queue per prompt kind.
type scriptedDriver struct {
	inputs   []string
	confirms []bool
	selects  []string   // option labels
	multis   [][]string // option labels
	areas    []string

	prompts []string
	infos   []string
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.inputs) == 0 {
		return "", fmt.Errorf("input %q: %w", cfg.Message, errScriptExhausted)
	}
	v := d.inputs[0]
	d.inputs = d.inputs[1:]
	return v, nil
}

func (d *scriptedDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("confirm %q: %w", cfg.Message, errScriptExhausted)
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, fmt.Errorf("select %q: %w", cfg.Message, errScriptExhausted)
	}
	label := d.selects[0]
	d.selects = d.selects[1:]
	i := indexOf(cfg.Options, label)
	if i < 0 {
		return 0, fmt.Errorf("select %q: %q not offered in %v", cfg.Message, label, cfg.Options)
	}
	return i, nil
}

func (d *scriptedDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.multis) == 0 {
		return nil, fmt.Errorf("multi-select %q: %w", cfg.Message, errScriptExhausted)
	}
	labels := d.multis[0]
	d.multis = d.multis[1:]
	return indicesOf(cfg.Options, labels), nil
}

func (d *scriptedDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.areas) == 0 {
		return "", fmt.Errorf("text area %q: %w", cfg.Message, errScriptExhausted)
	}
	v := d.areas[0]
	d.areas = d.areas[1:]
	return v, nil
}

func (d *scriptedDriver) Info(ctx context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func (d *scriptedDriver) assertConsumed(t *testing.T) {
	t.Helper()
	if n := len(d.inputs) + len(d.confirms) + len(d.selects) + len(d.multis) + len(d.areas); n != 0 {
		t.Errorf("Script has %d unused answers", n)
	}
}

func (d *scriptedDriver) sawInfo(substr string) bool {
	for _, info := range d.infos {
		if strings.Contains(info, substr) {
			return true
		}
	}
	return false
}

var (
	audiences = []models.Option{
		{ID: "aud-01", Title: "Prospective students"},
		{ID: "aud-02", Title: "Current students"},
		{ID: models.OtherOption, Title: "Other"},
	}
	taskTypes = []models.Option{
		{ID: "type-01", Title: "Banner"},
		{ID: "type-02", Title: "Booklet"},
		{ID: models.OtherOption, Title: "Other"},
	}
)

func today() time.Time {
	return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)
}

// recordingSubmitter stores every draft it receives
type recordingSubmitter struct {
	drafts []models.RequestDraft
	errs   []error
}

func (s *recordingSubmitter) Submit(ctx context.Context, d models.RequestDraft) (string, error) {
	s.drafts = append(s.drafts, d)
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return "proj-wizard", nil
}

func newForm(t *testing.T, sub form.Submitter, opts ...form.Option) *form.Orchestrator {
	t.Helper()
	o, err := form.New(sub, append([]form.Option{form.WithClock(today)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return o
}

func validDraft() models.RequestDraft {
	proof := today().AddDate(0, 0, 7)
	completion := today().AddDate(0, 0, 14)
	return models.RequestDraft{
		Title:          "Fall Banner",
		Audiences:      []string{"aud-01"},
		Purpose:        "Announce the open house",
		ProofDate:      &proof,
		CompletionDate: &completion,
		Budget:         "250",
		TaskTypes:      []string{"type-01"},
	}
}

func TestRun_FullIntake(t *testing.T) {
	sub := &recordingSubmitter{}
	o := newForm(t, sub)
	driver := &scriptedDriver{
		inputs:   []string{"Fall Banner", "Announce the open house", "2026-10-21", "2026-10-28", "1250", "Lanyards"},
		confirms: []bool{false, true, false},
		multis:   [][]string{{"Prospective students"}, {"Banner", "Other"}},
		areas:    []string{"Rush job"},
		selects:  []string{"Next", "Next", "Next", "Next", "Submit"},
	}
	var out bytes.Buffer

	result, err := Run(context.Background(), driver, o, audiences, taskTypes, &out)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	driver.assertConsumed(t)

	if result.ProjectID != "proj-wizard" {
		t.Errorf("Expected project proj-wizard, got %q", result.ProjectID)
	}
	if len(sub.drafts) != 1 {
		t.Fatalf("Expected one submission, got %d", len(sub.drafts))
	}

	d := sub.drafts[0]
	if d.Title != "Fall Banner" || d.Budget != "1250" || !d.PrinterQuote || d.Meeting || d.IsMailed {
		t.Errorf("Unexpected draft: %+v", d)
	}
	if diff := cmp.Diff([]string{"aud-01"}, d.Audiences); diff != "" {
		t.Errorf("Audiences mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"type-01", models.OtherOption}, d.TaskTypes); diff != "" {
		t.Errorf("Task types mismatch (-want +got):\n%s", diff)
	}
	if d.OtherTaskType != "Lanyards" || d.AdditionalInfo != "Rush job" {
		t.Errorf("Unexpected free text: %+v", d)
	}

	summary := out.String()
	for _, want := range []string{"projectId: proj-wizard", "budget: $1,250.00", "Other: Lanyards", "2026-10-21"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, summary)
		}
	}
}

func TestRun_RevealsConditionalFieldsWithinStep(t *testing.T) {
	o := newForm(t, &recordingSubmitter{})
	driver := &scriptedDriver{
		inputs:  []string{"Gala", "Visiting donors", "Celebrate"},
		multis:  [][]string{{"Other"}},
		selects: []string{"Cancel"},
	}

	_, err := Run(context.Background(), driver, o, audiences, taskTypes, &bytes.Buffer{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Expected ErrAborted, got %v", err)
	}

	want := []string{"Project title", "Audiences", "Other audience", "Purpose"}
	if diff := cmp.Diff(want, driver.prompts); diff != "" {
		t.Errorf("Prompt order mismatch (-want +got):\n%s", diff)
	}
	if got := o.Draft().OtherAudience; got != "Visiting donors" {
		t.Errorf("Expected other audience to be stored, got %q", got)
	}
}

func TestRun_InvalidSubmitJumpsToFirstInvalidStep(t *testing.T) {
	sub := &recordingSubmitter{}
	draft := validDraft()
	draft.Budget = "abc"
	o := newForm(t, sub, form.WithDraft(draft))
	if err := o.GoTo(4); err != nil {
		t.Fatal(err)
	}

	driver := &scriptedDriver{
		inputs:   []string{"300"},
		confirms: []bool{false, false},
		selects:  []string{"Submit", "Jump to step", "Review", "Submit"},
	}

	result, err := Run(context.Background(), driver, o, audiences, taskTypes, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	driver.assertConsumed(t)

	if !driver.sawInfo("Budget must be a valid number.") {
		t.Errorf("Expected budget message, got %v", driver.infos)
	}
	if !driver.sawInfo("Step 3 of 5: Budget") {
		t.Errorf("Expected to return to the Budget step, got %v", driver.infos)
	}
	if len(sub.drafts) != 1 || sub.drafts[0].Budget != "300" {
		t.Errorf("Expected one submission with the fixed budget, got %+v", sub.drafts)
	}
	if result.Draft.Budget != "300" {
		t.Errorf("Expected result draft budget 300, got %q", result.Draft.Budget)
	}
}

func TestRun_DatePromptRetriesAndMailDateAppears(t *testing.T) {
	o := newForm(t, &recordingSubmitter{})
	if err := o.GoTo(1); err != nil {
		t.Fatal(err)
	}

	driver := &scriptedDriver{
		inputs:   []string{"next tuesday", "2026-10-21", "", "2026-11-01"},
		confirms: []bool{true},
		selects:  []string{"Cancel"},
	}

	_, err := Run(context.Background(), driver, o, audiences, taskTypes, &bytes.Buffer{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("Expected ErrAborted, got %v", err)
	}
	driver.assertConsumed(t)

	if !driver.sawInfo(`"next tuesday" is not a date`) {
		t.Errorf("Expected date format message, got %v", driver.infos)
	}
	if !driver.sawInfo("  ! Completion date is required.") {
		t.Errorf("Expected hint for the blank completion date, got %v", driver.infos)
	}
	if driver.sawInfo("Proof date") {
		t.Errorf("Valid proof date should not get a hint, got %v", driver.infos)
	}

	d := o.Draft()
	if d.ProofDate == nil || d.ProofDate.Day() != 21 {
		t.Errorf("Expected proof date on the 21st, got %v", d.ProofDate)
	}
	if d.CompletionDate != nil {
		t.Errorf("Blank answer should leave completion date unset, got %v", d.CompletionDate)
	}
	if !d.IsMailed || d.MailDate == nil || d.MailDate.Month() != time.November {
		t.Errorf("Expected mail date in November, got %+v", d)
	}
}

func TestRun_SubmissionFailureCanRetry(t *testing.T) {
	sub := &recordingSubmitter{errs: []error{errors.New("store unavailable")}}
	o := newForm(t, sub, form.WithDraft(validDraft()))
	if err := o.GoTo(4); err != nil {
		t.Fatal(err)
	}

	driver := &scriptedDriver{selects: []string{"Submit", "Submit"}}

	result, err := Run(context.Background(), driver, o, audiences, taskTypes, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !driver.sawInfo("please try again") {
		t.Errorf("Expected retry message, got %v", driver.infos)
	}
	if len(sub.drafts) != 2 || result.ProjectID != "proj-wizard" {
		t.Errorf("Expected success on the second attempt, got %d calls", len(sub.drafts))
	}
}

func TestRun_NavigationChoicesAtEdges(t *testing.T) {
	o := newForm(t, &recordingSubmitter{}, form.WithSteps([]form.Step{{Name: "Only"}}))

	// A single step offers neither Next nor Back
	driver := &scriptedDriver{selects: []string{"Next"}}
	_, err := Run(context.Background(), driver, o, audiences, taskTypes, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "not offered") {
		t.Errorf("Expected Next to be unavailable, got %v", err)
	}
}

func TestRun_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, &scriptedDriver{}, newForm(t, &recordingSubmitter{}), audiences, taskTypes, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestFormatBudget(t *testing.T) {
	testCases := map[string]string{
		"1250":     "$1,250.00",
		"75":       "$75.00",
		"1234.5":   "$1,234.50",
		"not-cash": "not-cash",
	}
	for in, want := range testCases {
		if got := formatBudget(in); got != want {
			t.Errorf("formatBudget(%q) = %q, want %q", in, got, want)
		}
	}
}
