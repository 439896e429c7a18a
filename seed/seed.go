// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// Counts reports how many rows of each group were inserted.
type Counts struct {
	Audiences      int
	TaskTypes      int
	Users          int
	Projects       int
	Tasks          int
	TaskAttributes int
}

// Total is the number of rows inserted across all groups.
func (c Counts) Total() int {
	return c.Audiences + c.TaskTypes + c.Users + c.Projects + c.Tasks + c.TaskAttributes
}

// Run inserts the reference and sample data in one transaction.
// Groups go in dependency order and rows in list order. The first failed
// insert aborts the run and nothing is kept. Rows are not de-duplicated,
// so seeding a populated database fails on key conflicts.
func Run(ctx context.Context, conn *sql.DB, today time.Time) (Counts, error) {
	start := time.Now()
	today = startOfDay(today)
	slog.Info("start seeding", "today", today.Format(time.DateOnly))

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	var c Counts

	for _, a := range Audiences {
		if _, err := tx.ExecContext(ctx, `INSERT INTO audience (id, title) VALUES ($1, $2)`, a.ID, a.Title); err != nil {
			return Counts{}, fmt.Errorf("failed to seed audience %s: %w", a.ID, err)
		}
		c.Audiences++
	}

	for _, tt := range TaskTypes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO task_type (id, title) VALUES ($1, $2)`, tt.ID, tt.Title); err != nil {
			return Counts{}, fmt.Errorf("failed to seed task type %s: %w", tt.ID, err)
		}
		c.TaskTypes++
	}

	for _, u := range Users {
		if _, err := tx.ExecContext(ctx, `INSERT INTO app_user (id, name, email) VALUES ($1, $2, $3)`, u.ID, u.Name, u.Email); err != nil {
			return Counts{}, fmt.Errorf("failed to seed user %s: %w", u.ID, err)
		}
		c.Users++
	}

	for _, p := range Projects(today) {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO project (id, title, purpose, proof_date, completion_date, mail_date,
			                     budget, printer_quote, meeting, additional_info,
			                     approver_id, contact_id, invoice_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`, p.ID, p.Title, p.Purpose, p.ProofDate, p.CompletionDate, p.MailDate,
			p.Budget, p.PrinterQuote, p.Meeting, p.AdditionalInfo,
			p.ApproverID, p.ContactID, p.InvoiceID, p.CreatedAt)
		if err != nil {
			return Counts{}, fmt.Errorf("failed to seed project %s: %w", p.ID, err)
		}
		for _, audienceID := range p.AudienceIDs {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO project_audience (project_id, audience_id) VALUES ($1, $2)
			`, p.ID, audienceID)
			if err != nil {
				return Counts{}, fmt.Errorf("failed to link project %s to %s: %w", p.ID, audienceID, err)
			}
		}
		c.Projects++
	}

	for _, task := range Tasks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO task (id, project_id, task_type_id) VALUES ($1, $2, $3)
		`, task.ID, task.ProjectID, task.TaskTypeID)
		if err != nil {
			return Counts{}, fmt.Errorf("failed to seed task %s: %w", task.ID, err)
		}
		c.Tasks++
	}

	for _, attr := range TaskAttributes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO task_attribute (id, task_id, attr_key, attr_value) VALUES ($1, $2, $3, $4)
		`, attr.ID, attr.TaskID, attr.Key, attr.Value)
		if err != nil {
			return Counts{}, fmt.Errorf("failed to seed task attribute %s: %w", attr.ID, err)
		}
		c.TaskAttributes++
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, fmt.Errorf("failed to commit seed data: %w", err)
	}

	slog.Info("seeding finished",
		"rows", humanize.Comma(int64(c.Total())),
		"took", time.Since(start).Round(time.Millisecond).String(),
	)
	return c, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
