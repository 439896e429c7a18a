// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package visibility derives which draft fields are displayed.
package visibility

import "github.com/danielhkuo/project-request/models"

// formOrder lists every field in display order.
var formOrder = []string{
	models.FieldTitle,
	models.FieldAudiences,
	models.FieldOtherAudience,
	models.FieldPurpose,
	models.FieldProofDate,
	models.FieldCompletionDate,
	models.FieldIsMailed,
	models.FieldMailDate,
	models.FieldBudget,
	models.FieldPrinterQuote,
	models.FieldMeeting,
	models.FieldTaskTypes,
	models.FieldOtherTaskType,
	models.FieldAdditionalInfo,
}

// conditions holds the fields that are only shown for some drafts.
var conditions = map[string]func(d models.RequestDraft) bool{
	models.FieldOtherAudience: models.RequestDraft.HasOtherAudience,
	models.FieldMailDate:      func(d models.RequestDraft) bool { return d.IsMailed },
	models.FieldOtherTaskType: models.RequestDraft.HasOtherTaskType,
}

// Fields returns the fields to display for d, in form order.
func Fields(d models.RequestDraft) []string {
	out := make([]string, 0, len(formOrder))
	for _, field := range formOrder {
		if Visible(d, field) {
			out = append(out, field)
		}
	}
	return out
}

// Visible reports whether field is displayed for d.
// Unknown field names are not visible.
func Visible(d models.RequestDraft, field string) bool {
	if cond, ok := conditions[field]; ok {
		return cond(d)
	}
	return isKnown(field)
}

func isKnown(field string) bool {
	for _, f := range formOrder {
		if f == field {
			return true
		}
	}
	return false
}
