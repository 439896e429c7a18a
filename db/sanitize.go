// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import "github.com/danielhkuo/project-request/validation"

// optionalText strips markup and maps empty text to NULL.
func optionalText(s string) *string {
	s = validation.StripMarkup(s)
	if s == "" {
		return nil
	}
	return &s
}
