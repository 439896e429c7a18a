// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package visibility

import (
	"slices"
	"testing"

	"github.com/danielhkuo/project-request/models"
)

func TestFields_Conditional(t *testing.T) {
	tests := []struct {
		name  string
		draft models.RequestDraft
		shown []string
		gone  []string
	}{
		{
			name:  "empty draft hides conditional fields",
			draft: models.RequestDraft{},
			shown: []string{models.FieldTitle, models.FieldIsMailed, models.FieldTaskTypes},
			gone:  []string{models.FieldOtherAudience, models.FieldMailDate, models.FieldOtherTaskType},
		},
		{
			name:  "other audience",
			draft: models.RequestDraft{Audiences: []string{"aud-01", models.OtherOption}},
			shown: []string{models.FieldOtherAudience},
			gone:  []string{models.FieldMailDate, models.FieldOtherTaskType},
		},
		{
			name:  "mailed",
			draft: models.RequestDraft{IsMailed: true},
			shown: []string{models.FieldMailDate},
			gone:  []string{models.FieldOtherAudience, models.FieldOtherTaskType},
		},
		{
			name:  "other task type",
			draft: models.RequestDraft{TaskTypes: []string{models.OtherOption}},
			shown: []string{models.FieldOtherTaskType},
			gone:  []string{models.FieldOtherAudience, models.FieldMailDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Fields(tt.draft)
			for _, f := range tt.shown {
				if !slices.Contains(fields, f) {
					t.Errorf("Expected %s to be visible, got %v", f, fields)
				}
			}
			for _, f := range tt.gone {
				if slices.Contains(fields, f) {
					t.Errorf("Expected %s to be hidden, got %v", f, fields)
				}
			}
		})
	}
}

func TestFields_RecomputedOnChange(t *testing.T) {
	d := models.RequestDraft{}
	if Visible(d, models.FieldMailDate) {
		t.Fatal("mailDate should start hidden")
	}

	d.IsMailed = true
	if !Visible(d, models.FieldMailDate) {
		t.Error("mailDate should show once mailed")
	}

	d.IsMailed = false
	if Visible(d, models.FieldMailDate) {
		t.Error("mailDate should hide again")
	}
}

func TestFields_OrderAndCount(t *testing.T) {
	all := models.RequestDraft{
		Audiences: []string{models.OtherOption},
		IsMailed:  true,
		TaskTypes: []string{models.OtherOption},
	}
	fields := Fields(all)
	if !slices.Equal(fields, formOrder) {
		t.Errorf("Expected every field in form order, got %v", fields)
	}
	if got := len(Fields(models.RequestDraft{})); got != len(formOrder)-3 {
		t.Errorf("Expected %d base fields, got %d", len(formOrder)-3, got)
	}
}

func TestVisible_UnknownField(t *testing.T) {
	if Visible(models.RequestDraft{}, "nope") {
		t.Error("Unknown fields should not be visible")
	}
	if _, ok := conditions[models.FieldTitle]; ok {
		t.Error("title is not conditional")
	}
	if _, ok := conditions[models.FieldMailDate]; !ok {
		t.Error("mailDate is conditional")
	}
}
