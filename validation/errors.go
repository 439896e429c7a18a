// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/project-request/models"
)

// Kind classifies a field violation.
type Kind string

const (
	KindTooShort    Kind = "too_short"
	KindEmpty       Kind = "empty"
	KindRequired    Kind = "required"
	KindNotANumber  Kind = "not_a_number"
	KindBeforeToday Kind = "before_today"
)

// Errors maps a draft field name to the violation found on it.
// A nil or empty Errors means the draft is valid.
type Errors map[string]Kind

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

// Fields returns the invalid field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Messages renders every violation as a user-facing message.
func (e Errors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for field, kind := range e {
		out[field] = Message(field, kind)
	}
	return out
}

var messages = map[string]map[Kind]string{
	models.FieldTitle: {
		KindTooShort: "Title must be at least 2 characters.",
	},
	models.FieldAudiences: {
		KindEmpty: "Select at least one audience.",
	},
	models.FieldOtherAudience: {
		KindRequired: "Describe the other audience.",
		KindTooShort: "Other audience must be at least 2 characters.",
	},
	models.FieldPurpose: {
		KindTooShort: "Purpose must be at least 2 characters.",
	},
	models.FieldProofDate: {
		KindRequired:    "Proof date is required.",
		KindBeforeToday: "Proof date cannot be in the past.",
	},
	models.FieldCompletionDate: {
		KindRequired:    "Completion date is required.",
		KindBeforeToday: "Completion date cannot be in the past.",
	},
	models.FieldMailDate: {
		KindRequired:    "The mail date is required if it needs to be mailed.",
		KindBeforeToday: "Mail date cannot be in the past.",
	},
	models.FieldBudget: {
		KindRequired:   "Budget is required.",
		KindNotANumber: "Budget must be a valid number.",
	},
	models.FieldTaskTypes: {
		KindEmpty: "Select at least one task type.",
	},
	models.FieldOtherTaskType: {
		KindRequired: "Describe the other task type.",
		KindTooShort: "Other task type must be at least 2 characters.",
	},
}

// Message returns the message shown next to field for kind.
func Message(field string, kind Kind) string {
	if msg, ok := messages[field][kind]; ok {
		return msg
	}
	switch kind {
	case KindTooShort:
		return fmt.Sprintf("%s must be at least %d characters.", field, MinTextLength)
	case KindEmpty:
		return fmt.Sprintf("%s must have at least one selection.", field)
	case KindRequired:
		return fmt.Sprintf("%s is required.", field)
	case KindNotANumber:
		return fmt.Sprintf("%s must be a valid number.", field)
	case KindBeforeToday:
		return fmt.Sprintf("%s cannot be in the past.", field)
	}
	return fmt.Sprintf("%s is invalid.", field)
}
