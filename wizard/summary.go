// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/project-request/form"
	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/validation"
)

type summary struct {
	ProjectID      string   `yaml:"projectId"`
	Title          string   `yaml:"title"`
	Purpose        string   `yaml:"purpose"`
	Audiences      []string `yaml:"audiences"`
	ProofDate      string   `yaml:"proofDate"`
	CompletionDate string   `yaml:"completionDate"`
	MailDate       string   `yaml:"mailDate,omitempty"`
	Budget         string   `yaml:"budget"`
	PrinterQuote   bool     `yaml:"printerQuote"`
	Meeting        bool     `yaml:"meeting"`
	TaskTypes      []string `yaml:"taskTypes"`
	AdditionalInfo string   `yaml:"additionalInfo,omitempty"`
}

func (w *Wizard) printSummary(result form.Result) error {
	out, err := yaml.Marshal(w.summarize(result))
	if err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if _, err := fmt.Fprintf(w.out, "Request submitted.\n---\n%s", out); err != nil {
		return err
	}
	return nil
}

func (w *Wizard) summarize(result form.Result) summary {
	d := result.Draft
	return summary{
		ProjectID:      result.ProjectID,
		Title:          d.Title,
		Purpose:        d.Purpose,
		Audiences:      titles(w.audiences, d.Audiences, d.OtherAudience),
		ProofDate:      formatDate(d.ProofDate),
		CompletionDate: formatDate(d.CompletionDate),
		MailDate:       formatDate(d.MailDate),
		Budget:         formatBudget(d.Budget),
		PrinterQuote:   d.PrinterQuote,
		Meeting:        d.Meeting,
		TaskTypes:      titles(w.taskTypes, d.TaskTypes, d.OtherTaskType),
		AdditionalInfo: d.AdditionalInfo,
	}
}

// titles resolves selected IDs to display titles. The "Other" choice is
// shown as its free text.
func titles(options []models.Option, ids []string, other string) []string {
	byID := make(map[string]string, len(options))
	for _, opt := range options {
		byID[opt.ID] = opt.Title
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		switch {
		case id == models.OtherOption:
			out = append(out, "Other: "+other)
		case byID[id] != "":
			out = append(out, byID[id])
		default:
			out = append(out, id)
		}
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatBudget(raw string) string {
	v, err := validation.ParseBudget(raw)
	if err != nil {
		return raw
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}
