// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/project-request/models"
)

// MinTextLength is the shortest accepted value for required text fields.
const MinTextLength = 2

var ErrNotANumber = errors.New("not a finite decimal number")

// rule checks one field of a normalized draft. An empty Kind means the field passes.
type rule struct {
	field string
	check func(d models.RequestDraft, today time.Time) Kind
}

var rules = []rule{
	{models.FieldTitle, func(d models.RequestDraft, _ time.Time) Kind {
		return minLength(d.Title)
	}},
	{models.FieldAudiences, func(d models.RequestDraft, _ time.Time) Kind {
		return nonEmpty(d.Audiences)
	}},
	{models.FieldOtherAudience, func(d models.RequestDraft, _ time.Time) Kind {
		if !d.HasOtherAudience() {
			return ""
		}
		return requiredText(d.OtherAudience)
	}},
	{models.FieldPurpose, func(d models.RequestDraft, _ time.Time) Kind {
		return minLength(d.Purpose)
	}},
	{models.FieldProofDate, func(d models.RequestDraft, today time.Time) Kind {
		return requiredDate(d.ProofDate, today)
	}},
	{models.FieldCompletionDate, func(d models.RequestDraft, today time.Time) Kind {
		return requiredDate(d.CompletionDate, today)
	}},
	{models.FieldMailDate, func(d models.RequestDraft, today time.Time) Kind {
		if !d.IsMailed {
			return ""
		}
		return requiredDate(d.MailDate, today)
	}},
	{models.FieldBudget, func(d models.RequestDraft, _ time.Time) Kind {
		if strings.TrimSpace(d.Budget) == "" {
			return KindRequired
		}
		if _, err := ParseBudget(d.Budget); err != nil {
			return KindNotANumber
		}
		return ""
	}},
	{models.FieldTaskTypes, func(d models.RequestDraft, _ time.Time) Kind {
		return nonEmpty(d.TaskTypes)
	}},
	{models.FieldOtherTaskType, func(d models.RequestDraft, _ time.Time) Kind {
		if !d.HasOtherTaskType() {
			return ""
		}
		return requiredText(d.OtherTaskType)
	}},
}

// Validate normalizes d and runs every rule against the result.
// All rules run; the returned Errors holds one entry per failing field and
// is nil when the draft is valid. d itself is never modified.
func Validate(d models.RequestDraft, today time.Time) (models.RequestDraft, Errors) {
	normalized := Normalize(d)

	var errs Errors
	for _, r := range rules {
		if kind := r.check(normalized, today); kind != "" {
			if errs == nil {
				errs = make(Errors)
			}
			errs[r.field] = kind
		}
	}
	return normalized, errs
}

// CheckField runs the rule for a single field against the normalized draft.
// Fields without a rule always pass.
func CheckField(field string, d models.RequestDraft, today time.Time) (Kind, bool) {
	normalized := Normalize(d)
	for _, r := range rules {
		if r.field != field {
			continue
		}
		if kind := r.check(normalized, today); kind != "" {
			return kind, false
		}
		return "", true
	}
	return "", true
}

// Normalize returns a copy of d with mechanical adjustments applied:
// markup is stripped from free text, mailDate is cleared unless isMailed,
// and blank multi-select entries are dropped.
func Normalize(d models.RequestDraft) models.RequestDraft {
	out := d.Clone()
	for _, text := range []*string{&out.Title, &out.Purpose, &out.OtherAudience, &out.OtherTaskType, &out.AdditionalInfo} {
		*text = StripMarkup(*text)
	}
	if !out.IsMailed {
		out.MailDate = nil
	}
	out.Audiences = dropBlank(out.Audiences)
	out.TaskTypes = dropBlank(out.TaskTypes)
	return out
}

// ParseBudget parses a budget entered as decimal text.
// Hex, NaN and infinities are rejected.
func ParseBudget(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "xX_") {
		return 0, ErrNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotANumber
	}
	return v, nil
}

func minLength(s string) Kind {
	if utf8.RuneCountInString(s) < MinTextLength {
		return KindTooShort
	}
	return ""
}

func requiredText(s string) Kind {
	if s == "" {
		return KindRequired
	}
	return minLength(s)
}

func nonEmpty(values []string) Kind {
	if len(values) == 0 {
		return KindEmpty
	}
	return ""
}

func requiredDate(t *time.Time, today time.Time) Kind {
	if t == nil || t.IsZero() {
		return KindRequired
	}
	if BeforeDay(*t, today) {
		return KindBeforeToday
	}
	return ""
}

// BeforeDay reports whether the calendar date of t precedes that of day.
// Each value is read in its own location; the time of day is ignored.
func BeforeDay(t, day time.Time) bool {
	ty, tm, td := t.Date()
	dy, dm, dd := day.Date()
	if ty != dy {
		return ty < dy
	}
	if tm != dm {
		return tm < dm
	}
	return td < dd
}

func dropBlank(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
