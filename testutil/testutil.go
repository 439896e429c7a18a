// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/project-request/cliparse"
	"github.com/danielhkuo/project-request/db"
	"github.com/danielhkuo/project-request/models"
)

// TestDBURL is the in-memory test database. db.Open adds the same pragmas
// it adds to file databases.
const TestDBURL = ":memory:"

// SetupTestDB opens a fresh in-memory SQLite database with the full schema.
// The connection is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: db.TypeSQLite,
		Command:      cliparse.CommandServe,
	}
}

// Today is the fixed date tests validate against
func Today() time.Time {
	return time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)
}

// AddTestAudience inserts an audience row
func AddTestAudience(t *testing.T, conn *sql.DB, id, title string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO audience (id, title) VALUES ($1, $2)`, id, title)
	if err != nil {
		t.Fatalf("Failed to create test audience: %v", err)
	}
}

// AddTestTaskType inserts a task type row
func AddTestTaskType(t *testing.T, conn *sql.DB, id, title string) {
	t.Helper()

	_, err := conn.Exec(`INSERT INTO task_type (id, title) VALUES ($1, $2)`, id, title)
	if err != nil {
		t.Fatalf("Failed to create test task type: %v", err)
	}
}

// SeedTestReference inserts a small set of audiences and task types,
// including the "Other" choice of each.
func SeedTestReference(t *testing.T, conn *sql.DB) {
	t.Helper()

	AddTestAudience(t, conn, "aud-01", "Prospective students")
	AddTestAudience(t, conn, "aud-02", "Current students")
	AddTestAudience(t, conn, "aud-09", "Other")
	AddTestTaskType(t, conn, "type-01", "Banner")
	AddTestTaskType(t, conn, "type-02", "Booklet")
	AddTestTaskType(t, conn, "type-12", "Other")
}

// ValidDraft returns a draft that passes every rule relative to Today
func ValidDraft() models.RequestDraft {
	proof := Today().AddDate(0, 0, 7)
	completion := Today().AddDate(0, 0, 14)
	return models.RequestDraft{
		Title:          "Fall Banner",
		Audiences:      []string{"aud-01"},
		Purpose:        "Announce the open house",
		ProofDate:      &proof,
		CompletionDate: &completion,
		Budget:         "250",
		TaskTypes:      []string{"type-01"},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
