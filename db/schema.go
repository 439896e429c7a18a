// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is valid for both SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// ResetSchema drops every table created by CreateSchema, then recreates them
// empty.
func ResetSchema(db *sql.DB) error {
	if err := dropSchema(db); err != nil {
		return err
	}
	return CreateSchema(db)
}

func dropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS task_attribute;
		DROP TABLE IF EXISTS task;
		DROP TABLE IF EXISTS project_audience;
		DROP TABLE IF EXISTS project;
		DROP TABLE IF EXISTS app_user;
		DROP TABLE IF EXISTS task_type;
		DROP TABLE IF EXISTS audience;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const schema = `
-- Reference data
CREATE TABLE IF NOT EXISTS audience (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS task_type (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL
);

-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE
);

-- Projects (submitted requests)
CREATE TABLE IF NOT EXISTS project (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    purpose TEXT NOT NULL,
    other_audience TEXT,
    proof_date TIMESTAMP NOT NULL,
    completion_date TIMESTAMP NOT NULL,
    mail_date TIMESTAMP,
    budget DOUBLE PRECISION NOT NULL,
    printer_quote BOOLEAN NOT NULL DEFAULT FALSE,
    meeting BOOLEAN NOT NULL DEFAULT FALSE,
    other_task_type TEXT,
    additional_info TEXT,
    approver_id TEXT REFERENCES app_user(id),
    contact_id TEXT REFERENCES app_user(id),
    invoice_id TEXT REFERENCES app_user(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_project_completion_date ON project(completion_date);

-- Project audiences
CREATE TABLE IF NOT EXISTS project_audience (
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    audience_id TEXT NOT NULL REFERENCES audience(id),
    PRIMARY KEY (project_id, audience_id)
);

-- Tasks
CREATE TABLE IF NOT EXISTS task (
    id TEXT PRIMARY KEY,
    project_id TEXT NOT NULL REFERENCES project(id) ON DELETE CASCADE,
    task_type_id TEXT NOT NULL REFERENCES task_type(id)
);

CREATE INDEX IF NOT EXISTS idx_task_project_id ON task(project_id);

-- Task attributes
CREATE TABLE IF NOT EXISTS task_attribute (
    id TEXT PRIMARY KEY,
    task_id TEXT NOT NULL REFERENCES task(id) ON DELETE CASCADE,
    attr_key TEXT NOT NULL,
    attr_value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_task_attribute_task_id ON task_attribute(task_id);
`
