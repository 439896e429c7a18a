// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the relational store: connection, schema, submitted
requests and reference data.

# Connecting

Open accepts "sqlite" (modernc.org/sqlite) or "postgres" (lib/pq):

	conn, err := db.Open(db.TypeSQLite, "file:project-request.db")

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on SQLite and PostgreSQL.

# Tables

  - audience, task_type: reference data
  - app_user: requesters, approvers, invoice contacts
  - project: one row per submitted request
  - project_audience: selected audiences of a project
  - task: one row per selected task type
  - task_attribute: key/value details of a task

# Relationships

	project *──* audience (via project_audience)
	project 1──* task
	task_type 1──* task
	task 1──* task_attribute
	app_user 1──* project (approver, contact, invoice)

# Store

Store implements the form submission collaborator (Submit) and the
reference-data provider (ListAudiences, ListTaskTypes). Free text is
stripped of HTML before it is written.
*/
package db
