// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package wizard runs the project request form in a terminal.
//
// Each step prompts only for its visible fields, then offers Next, Back,
// Jump and Submit. A rejected submission lists every message and returns
// to the earliest step with an invalid field. Prompts go through a
// PromptDriver; NewSurveyDriver is the interactive implementation.
package wizard
