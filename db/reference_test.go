// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/models"
	"github.com/danielhkuo/project-request/testutil"
)

func TestListAudiences(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)

	got, err := store.ListAudiences(context.Background())
	if err != nil {
		t.Fatalf("ListAudiences failed: %v", err)
	}

	want := []models.Option{
		{ID: "aud-01", Title: "Prospective students"},
		{ID: "aud-02", Title: "Current students"},
		{ID: models.OtherOption, Title: "Other"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Audiences mismatch (-want +got):\n%s", diff)
	}
}

func TestListTaskTypes(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	store := db.NewStore(conn)

	got, err := store.ListTaskTypes(context.Background())
	if err != nil {
		t.Fatalf("ListTaskTypes failed: %v", err)
	}

	want := []models.Option{
		{ID: "type-01", Title: "Banner"},
		{ID: "type-02", Title: "Booklet"},
		{ID: models.OtherOption, Title: "Other"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Task types mismatch (-want +got):\n%s", diff)
	}
}

func TestListOptions_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	got, err := store.ListAudiences(context.Background())
	if err != nil {
		t.Fatalf("ListAudiences failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", got)
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestResetSchema(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	testutil.SeedTestReference(t, conn)
	if _, err := db.NewStore(conn).Submit(context.Background(), testutil.ValidDraft()); err != nil {
		t.Fatal(err)
	}

	if err := db.ResetSchema(conn); err != nil {
		t.Fatalf("ResetSchema failed: %v", err)
	}

	for _, table := range []string{"audience", "task_type", "project", "project_audience", "task"} {
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
			t.Fatalf("%s: %v", table, err)
		}
		if count != 0 {
			t.Errorf("Expected %s to be empty after reset, found %d rows", table, count)
		}
	}

	// Reference data can be loaded again on the fresh tables
	testutil.SeedTestReference(t, conn)
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := db.Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	dir := t.TempDir()
	testCases := map[string]string{
		"file URI":   "file:" + filepath.Join(dir, "project-request.db"),
		"plain path": filepath.Join(dir, "plain.db"),
		"own pragma": "file:" + filepath.Join(dir, "own.db") + "?_pragma=busy_timeout(5000)",
	}

	for name, url := range testCases {
		t.Run(name, func(t *testing.T) {
			conn, err := db.Open(db.TypeSQLite, url)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			t.Cleanup(func() { conn.Close() })

			var enabled int
			if err := conn.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
				t.Fatal(err)
			}
			if enabled != 1 {
				t.Errorf("Expected foreign_keys on, got %d", enabled)
			}

			if err := db.CreateSchema(conn); err != nil {
				t.Fatal(err)
			}
			testutil.SeedTestReference(t, conn)

			draft := testutil.ValidDraft()
			draft.Audiences = []string{"aud-404"}
			if _, err := db.NewStore(conn).Submit(context.Background(), draft); err == nil {
				t.Error("Expected unknown audience to be rejected")
			}
		})
	}
}
