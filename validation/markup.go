// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// StripMarkup removes HTML tags from free text and unescapes entities.
// Text without a '<' is returned unchanged. Stripping repeats until the
// text stops changing, so StripMarkup(StripMarkup(s)) == StripMarkup(s).
func StripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	for strings.Contains(s, "<") {
		next := strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
		if next == s {
			break
		}
		s = next
	}
	return s
}
