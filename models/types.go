// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"slices"
	"time"
)

// OtherOption is the sentinel value selected in audiences or task types
// when none of the listed choices fit.
const OtherOption = "Other"

// Draft field names, as used in JSON payloads and error maps
const (
	FieldTitle          = "title"
	FieldAudiences      = "audiences"
	FieldOtherAudience  = "otherAudience"
	FieldPurpose        = "purpose"
	FieldProofDate      = "proofDate"
	FieldCompletionDate = "completionDate"
	FieldIsMailed       = "isMailed"
	FieldMailDate       = "mailDate"
	FieldBudget         = "budget"
	FieldPrinterQuote   = "printerQuote"
	FieldMeeting        = "meeting"
	FieldTaskTypes      = "taskTypes"
	FieldOtherTaskType  = "otherTaskType"
	FieldAdditionalInfo = "additionalInfo"
)

// Draft types

// RequestDraft is an in-progress project request.
type RequestDraft struct {
	Title          string     `json:"title" yaml:"title"`
	Audiences      []string   `json:"audiences" yaml:"audiences"`
	OtherAudience  string     `json:"otherAudience,omitempty" yaml:"otherAudience,omitempty"`
	Purpose        string     `json:"purpose" yaml:"purpose"`
	ProofDate      *time.Time `json:"proofDate,omitempty" yaml:"proofDate,omitempty"`
	CompletionDate *time.Time `json:"completionDate,omitempty" yaml:"completionDate,omitempty"`
	IsMailed       bool       `json:"isMailed" yaml:"isMailed"`
	MailDate       *time.Time `json:"mailDate,omitempty" yaml:"mailDate,omitempty"`
	Budget         string     `json:"budget" yaml:"budget"`
	PrinterQuote   bool       `json:"printerQuote" yaml:"printerQuote"`
	Meeting        bool       `json:"meeting" yaml:"meeting"`
	TaskTypes      []string   `json:"taskTypes" yaml:"taskTypes"`
	OtherTaskType  string     `json:"otherTaskType,omitempty" yaml:"otherTaskType,omitempty"`
	AdditionalInfo string     `json:"additionalInfo,omitempty" yaml:"additionalInfo,omitempty"`
}

// Clone returns a deep copy; slices and date pointers are not shared.
func (d RequestDraft) Clone() RequestDraft {
	out := d
	out.Audiences = slices.Clone(d.Audiences)
	out.TaskTypes = slices.Clone(d.TaskTypes)
	out.ProofDate = cloneTime(d.ProofDate)
	out.CompletionDate = cloneTime(d.CompletionDate)
	out.MailDate = cloneTime(d.MailDate)
	return out
}

// HasOtherAudience reports whether the "Other" audience is selected.
func (d RequestDraft) HasOtherAudience() bool {
	return slices.Contains(d.Audiences, OtherOption)
}

// HasOtherTaskType reports whether the "Other" task type is selected.
func (d RequestDraft) HasOtherTaskType() bool {
	return slices.Contains(d.TaskTypes, OtherOption)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Reference data

// Option is one choice of a multi-select control.
type Option struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Seed and storage types

type Audience struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type TaskType struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Project struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Purpose        string     `json:"purpose"`
	OtherAudience  *string    `json:"other_audience,omitempty"`
	ProofDate      time.Time  `json:"proof_date"`
	CompletionDate time.Time  `json:"completion_date"`
	MailDate       *time.Time `json:"mail_date,omitempty"`
	Budget         float64    `json:"budget"`
	PrinterQuote   bool       `json:"printer_quote"`
	Meeting        bool       `json:"meeting"`
	OtherTaskType  *string    `json:"other_task_type,omitempty"`
	AdditionalInfo *string    `json:"additional_info,omitempty"`
	ApproverID     *string    `json:"approver_id,omitempty"`
	ContactID      *string    `json:"contact_id,omitempty"`
	InvoiceID      *string    `json:"invoice_id,omitempty"`
	AudienceIDs    []string   `json:"audience_ids"`
	CreatedAt      time.Time  `json:"created_at"`
}

type Task struct {
	ID         string `json:"id"`
	ProjectID  string `json:"project_id"`
	TaskTypeID string `json:"task_type_id"`
}

type TaskAttribute struct {
	ID     string `json:"id"`
	TaskID string `json:"task_id"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

type ProjectWithTasks struct {
	Project Project `json:"project"`
	Tasks   []Task  `json:"tasks"`
}

// Request types

type GoToStepRequest struct {
	Step int `json:"step"`
}

// Response types

type SubmitResponse struct {
	ProjectID string `json:"project_id"`
	Message   string `json:"message"`
}

type ValidateResponse struct {
	Valid  bool              `json:"valid"`
	Draft  RequestDraft      `json:"draft"`
	Errors map[string]string `json:"errors,omitempty"`
}

type VisibilityResponse struct {
	Fields []string `json:"fields"`
}

type StepView struct {
	Index  int      `json:"index"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

type SessionResponse struct {
	SessionID string       `json:"session_id"`
	Step      StepView     `json:"step"`
	Steps     []string     `json:"steps"`
	Visible   []string     `json:"visible"`
	Draft     RequestDraft `json:"draft"`
}

// ValidationErrorResponse is returned with 422 when a draft is rejected
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
