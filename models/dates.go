// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date form accepted for draft dates, as sent by
// an HTML date input. RFC 3339 timestamps are accepted too.
const DateLayout = time.DateOnly

// draftDate decodes a JSON date in DateLayout or RFC 3339. null and "" clear it.
type draftDate struct {
	t *time.Time
}

func (d *draftDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		d.t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.t = nil
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD or RFC 3339", s)
	}
	d.t = &t
	return nil
}

// UnmarshalJSON decodes a draft, accepting either date form. Unknown fields
// are rejected.
func (d *RequestDraft) UnmarshalJSON(b []byte) error {
	type plain RequestDraft
	aux := struct {
		*plain
		ProofDate      draftDate `json:"proofDate"`
		CompletionDate draftDate `json:"completionDate"`
		MailDate       draftDate `json:"mailDate"`
	}{
		plain:          (*plain)(d),
		ProofDate:      draftDate{d.ProofDate},
		CompletionDate: draftDate{d.CompletionDate},
		MailDate:       draftDate{d.MailDate},
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}

	d.ProofDate = aux.ProofDate.t
	d.CompletionDate = aux.CompletionDate.t
	d.MailDate = aux.MailDate.t
	return nil
}
