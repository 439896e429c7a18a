// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/validation"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrIncompleteDraft = errors.New("draft is missing required dates")
)

// Store persists accepted requests and serves reference data.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Submit stores an accepted draft as a project with its audiences and tasks.
// The "Other" sentinels are not stored as rows; their free text lives on the
// project. Returns the new project ID.
func (s *Store) Submit(ctx context.Context, d models.RequestDraft) (string, error) {
	budget, err := validation.ParseBudget(d.Budget)
	if err != nil {
		return "", fmt.Errorf("invalid budget %q: %w", d.Budget, err)
	}
	if d.ProofDate == nil || d.CompletionDate == nil {
		return "", ErrIncompleteDraft
	}

	projectID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var otherAudience, otherTaskType *string
	if d.HasOtherAudience() {
		otherAudience = optionalText(d.OtherAudience)
	}
	if d.HasOtherTaskType() {
		otherTaskType = optionalText(d.OtherTaskType)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO project (id, title, purpose, other_audience, proof_date, completion_date,
		                     mail_date, budget, printer_quote, meeting, other_task_type,
		                     additional_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, projectID, validation.StripMarkup(d.Title), validation.StripMarkup(d.Purpose), otherAudience,
		*d.ProofDate, *d.CompletionDate, d.MailDate, budget, d.PrinterQuote, d.Meeting,
		otherTaskType, optionalText(d.AdditionalInfo), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert project: %w", err)
	}

	for _, audienceID := range selected(d.Audiences) {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO project_audience (project_id, audience_id)
			VALUES ($1, $2)
		`, projectID, audienceID)
		if err != nil {
			return "", fmt.Errorf("failed to link audience %s: %w", audienceID, err)
		}
	}

	for _, taskTypeID := range selected(d.TaskTypes) {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO task (id, project_id, task_type_id)
			VALUES ($1, $2, $3)
		`, uuid.NewString(), projectID, taskTypeID)
		if err != nil {
			return "", fmt.Errorf("failed to insert task %s: %w", taskTypeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit project: %w", err)
	}

	slog.Info("project stored", "project_id", projectID, "tasks", len(selected(d.TaskTypes)))
	return projectID, nil
}

// GetProject loads a stored project with its audiences and tasks.
func (s *Store) GetProject(ctx context.Context, id string) (models.ProjectWithTasks, error) {
	var (
		p                                  models.Project
		otherAudience, otherTaskType, info sql.NullString
		approverID, contactID, invoiceID   sql.NullString
		mailDate                           sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, purpose, other_audience, proof_date, completion_date, mail_date,
		       budget, printer_quote, meeting, other_task_type, additional_info,
		       approver_id, contact_id, invoice_id, created_at
		FROM project
		WHERE id = $1
	`, id).Scan(
		&p.ID, &p.Title, &p.Purpose, &otherAudience, &p.ProofDate, &p.CompletionDate, &mailDate,
		&p.Budget, &p.PrinterQuote, &p.Meeting, &otherTaskType, &info,
		&approverID, &contactID, &invoiceID, &p.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.ProjectWithTasks{}, ErrNotFound
	}
	if err != nil {
		return models.ProjectWithTasks{}, fmt.Errorf("failed to query project: %w", err)
	}

	p.OtherAudience = fromNullString(otherAudience)
	p.OtherTaskType = fromNullString(otherTaskType)
	p.AdditionalInfo = fromNullString(info)
	p.ApproverID = fromNullString(approverID)
	p.ContactID = fromNullString(contactID)
	p.InvoiceID = fromNullString(invoiceID)
	if mailDate.Valid {
		p.MailDate = &mailDate.Time
	}

	p.AudienceIDs, err = s.projectAudiences(ctx, id)
	if err != nil {
		return models.ProjectWithTasks{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, task_type_id
		FROM task
		WHERE project_id = $1
		ORDER BY task_type_id
	`, id)
	if err != nil {
		return models.ProjectWithTasks{}, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.ID, &task.ProjectID, &task.TaskTypeID); err != nil {
			return models.ProjectWithTasks{}, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return models.ProjectWithTasks{}, fmt.Errorf("failed to read tasks: %w", err)
	}

	return models.ProjectWithTasks{Project: p, Tasks: tasks}, nil
}

func (s *Store) projectAudiences(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT audience_id FROM project_audience
		WHERE project_id = $1
		ORDER BY audience_id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project audiences: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project audience: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// selected returns the distinct real identifiers of a multi-select, in order,
// without the "Other" sentinel.
func selected(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || v == models.OtherOption || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
