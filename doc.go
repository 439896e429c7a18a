// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the project request service.

Staff submit marketing project requests through a five step form: Project,
Schedule, Budget, Tasks and Review. The same form runs over HTTP (stateless
validation or server-held sessions) and as a terminal wizard.

# Commands

	go run . serve    # HTTP API (default)
	go run . seed     # load audiences, task types and a sample project
	go run . --reset seed  # empty every table first
	go run . intake   # interactive terminal form

# Configuration

Settings come from flags, then environment variables, then a .env file in
the working directory:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Connection string (default: file:project-request.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_ON_START (--seed): Seed before serving

# Architecture

  - validation: Field rules and error messages
  - visibility: Conditional fields
  - stepper: Step position and navigation
  - form: Orchestrator and session registry
  - db: Schema, reference data and submission store
  - seed: Reference data loader
  - handlers, router, middleware: HTTP API
  - metrics: Prometheus counters
  - wizard: Terminal form
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
