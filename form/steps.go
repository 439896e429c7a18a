// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import "github.com/danielhkuo/project-request/models"

// Step is one page of the request form and the draft fields it collects.
type Step struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// DefaultSteps is the page layout of the project request form.
var DefaultSteps = []Step{
	{
		Name: "Project",
		Fields: []string{
			models.FieldTitle,
			models.FieldAudiences,
			models.FieldOtherAudience,
			models.FieldPurpose,
		},
	},
	{
		Name: "Schedule",
		Fields: []string{
			models.FieldProofDate,
			models.FieldCompletionDate,
			models.FieldIsMailed,
			models.FieldMailDate,
		},
	},
	{
		Name: "Budget",
		Fields: []string{
			models.FieldBudget,
			models.FieldPrinterQuote,
			models.FieldMeeting,
		},
	},
	{
		Name: "Tasks",
		Fields: []string{
			models.FieldTaskTypes,
			models.FieldOtherTaskType,
			models.FieldAdditionalInfo,
		},
	},
	{Name: "Review"},
}

func stepNames(layout []Step) []string {
	names := make([]string, len(layout))
	for i, s := range layout {
		names[i] = s.Name
	}
	return names
}

// StepForField returns the index of the step in layout that collects field, or -1.
func StepForField(layout []Step, field string) int {
	for i, s := range layout {
		for _, f := range s.Fields {
			if f == field {
				return i
			}
		}
	}
	return -1
}

// FirstInvalidStep returns the earliest step holding one of fields, or -1.
func FirstInvalidStep(layout []Step, fields []string) int {
	first := -1
	for _, f := range fields {
		if i := StepForField(layout, f); i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}
