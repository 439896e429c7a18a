// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation implements the rule set applied to a project request draft.

# Usage

	normalized, errs := validation.Validate(draft, today)
	if errs != nil {
		// errs.Messages() → field: message
	}

Every rule is evaluated; the result carries one Kind per failing field:

  - title, purpose: too_short below 2 characters
  - audiences, taskTypes: empty with no selection
  - otherAudience, otherTaskType: required / too_short when "Other" is selected
  - proofDate, completionDate: required, before_today
  - mailDate: required / before_today when isMailed
  - budget: required, not_a_number

# Normalization

Validate works on Normalize(draft): HTML is stripped from free text, so
"<b></b>" is an empty title; mailDate is cleared when isMailed is false;
blank multi-select entries are dropped. These adjustments are not
errors. Normalizing twice gives the same draft.
*/
package validation
