// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed populates a fresh database with the audience and task type
// choices plus one sample project.
package seed
