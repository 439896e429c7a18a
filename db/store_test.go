// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/testutil"
)

func TestStoreSubmit(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)
	ctx := context.Background()

	draft := testutil.ValidDraft()
	draft.Audiences = []string{"aud-01", "aud-02", models.OtherOption}
	draft.OtherAudience = "Visiting scholars"
	draft.TaskTypes = []string{"type-02", "type-01", "type-01"}
	draft.PrinterQuote = true

	id, err := store.Submit(ctx, draft)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected non-empty project id")
	}

	got, err := store.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}

	p := got.Project
	if p.Title != draft.Title {
		t.Errorf("Expected title %q, got %q", draft.Title, p.Title)
	}
	if p.Budget != 250 {
		t.Errorf("Expected budget 250, got %v", p.Budget)
	}
	if !p.PrinterQuote || p.Meeting {
		t.Errorf("Unexpected flags: printerQuote=%v meeting=%v", p.PrinterQuote, p.Meeting)
	}
	if p.OtherAudience == nil || *p.OtherAudience != "Visiting scholars" {
		t.Errorf("Expected other audience to be stored, got %v", p.OtherAudience)
	}
	if p.OtherTaskType != nil {
		t.Errorf("Expected no other task type, got %q", *p.OtherTaskType)
	}
	if p.MailDate != nil {
		t.Errorf("Expected no mail date, got %v", p.MailDate)
	}
	if !sameDay(p.ProofDate, *draft.ProofDate) {
		t.Errorf("Expected proof date %v, got %v", draft.ProofDate, p.ProofDate)
	}

	if diff := cmp.Diff([]string{"aud-01", "aud-02"}, p.AudienceIDs); diff != "" {
		t.Errorf("Audience mismatch (-want +got):\n%s", diff)
	}

	var taskTypes []string
	for _, task := range got.Tasks {
		if task.ProjectID != id {
			t.Errorf("Task %s belongs to %s, want %s", task.ID, task.ProjectID, id)
		}
		taskTypes = append(taskTypes, task.TaskTypeID)
	}
	if diff := cmp.Diff([]string{"type-01", "type-02"}, taskTypes); diff != "" {
		t.Errorf("Task types mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreSubmit_MailedAndOtherTask(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)
	ctx := context.Background()

	mail := testutil.Today().AddDate(0, 0, 17)
	draft := testutil.ValidDraft()
	draft.IsMailed = true
	draft.MailDate = &mail
	draft.TaskTypes = []string{models.OtherOption}
	draft.OtherTaskType = "Window cling"

	id, err := store.Submit(ctx, draft)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	got, err := store.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if got.Project.MailDate == nil || !sameDay(*got.Project.MailDate, mail) {
		t.Errorf("Expected mail date %v, got %v", mail, got.Project.MailDate)
	}
	if got.Project.OtherTaskType == nil || *got.Project.OtherTaskType != "Window cling" {
		t.Errorf("Expected other task type, got %v", got.Project.OtherTaskType)
	}
	if len(got.Tasks) != 0 {
		t.Errorf("Expected no task rows for the Other sentinel, got %d", len(got.Tasks))
	}
}

func TestStoreSubmit_StripsMarkup(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)
	ctx := context.Background()

	draft := testutil.ValidDraft()
	draft.Title = "<b>Fall</b> Banner<script>alert(1)</script>"
	draft.AdditionalInfo = "<p>Rush &amp; print</p>"

	id, err := store.Submit(ctx, draft)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	got, err := store.GetProject(ctx, id)
	if err != nil {
		t.Fatalf("GetProject failed: %v", err)
	}
	if got.Project.Title != "Fall Banner" {
		t.Errorf("Expected markup stripped from title, got %q", got.Project.Title)
	}
	if got.Project.AdditionalInfo == nil || *got.Project.AdditionalInfo != "Rush & print" {
		t.Errorf("Unexpected additional info: %v", got.Project.AdditionalInfo)
	}
}

func TestStoreSubmit_UnknownAudienceRollsBack(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)

	draft := testutil.ValidDraft()
	draft.Audiences = []string{"aud-404"}

	if _, err := store.Submit(context.Background(), draft); err == nil {
		t.Fatal("Expected foreign key error for unknown audience")
	}

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM project").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("Expected rollback to leave no projects, found %d", count)
	}
}

func TestStoreSubmit_RejectsIncompleteDraft(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	draft := testutil.ValidDraft()
	draft.CompletionDate = nil
	if _, err := store.Submit(context.Background(), draft); !errors.Is(err, db.ErrIncompleteDraft) {
		t.Errorf("Expected ErrIncompleteDraft, got %v", err)
	}

	draft = testutil.ValidDraft()
	draft.Budget = "lots"
	if _, err := store.Submit(context.Background(), draft); err == nil {
		t.Error("Expected error for unparseable budget")
	}
}

func TestGetProject_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	_, err := store.GetProject(context.Background(), "missing")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
