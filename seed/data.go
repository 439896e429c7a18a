// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"time"

	"github.com/danielhkuo/project-request/models"
)

// Audiences is the fixed audience list offered by the form.
var Audiences = []models.Audience{
	{ID: "aud-01", Title: "Prospective students"},
	{ID: "aud-02", Title: "Current students"},
	{ID: "aud-03", Title: "Faculty/staff"},
	{ID: "aud-04", Title: "Alumni"},
	{ID: "aud-05", Title: "Parents/Wofford families"},
	{ID: "aud-06", Title: "Donors"},
	{ID: "aud-07", Title: "Wofford community"},
	{ID: "aud-08", Title: "Outside community"},
	{ID: "aud-09", Title: "Other"},
}

// TaskTypes is the fixed task type list offered by the form.
var TaskTypes = []models.TaskType{
	{ID: "type-01", Title: "Banner"},
	{ID: "type-02", Title: "Booklet"},
	{ID: "type-03", Title: "Brochure"},
	{ID: "type-04", Title: "Invitation"},
	{ID: "type-05", Title: "Email graphic"},
	{ID: "type-06", Title: "Newsletter"},
	{ID: "type-07", Title: "Postcards/mailers"},
	{ID: "type-08", Title: "Poster/flyer"},
	{ID: "type-09", Title: "Program"},
	{ID: "type-10", Title: "Signage"},
	{ID: "type-11", Title: "T-shirt"},
	{ID: "type-12", Title: "Other"},
	{ID: "type-13", Title: "Photography"},
	{ID: "type-14", Title: "Social Media Ad"},
	{ID: "type-15", Title: "Social Media Coverage"},
	{ID: "type-16", Title: "Social Media Graphic"},
	{ID: "type-17", Title: "Video"},
	{ID: "type-18", Title: "Website update"},
	{ID: "type-19", Title: "News release/story pitch"},
	{ID: "type-20", Title: "Script/speech"},
	{ID: "type-21", Title: "Editing"},
}

// Users holds the single sample requester.
var Users = []models.User{
	{ID: "user-01", Name: "Sample Requester", Email: "requester@example.com"},
}

// Projects returns the sample project with dates relative to today.
func Projects(today time.Time) []models.Project {
	mail := today.AddDate(0, 0, 17)
	info := "I want to make sure this is on your radar."
	user := "user-01"

	return []models.Project{
		{
			ID:             "proj-01",
			Title:          "Project One",
			Purpose:        "To get the people excited",
			ProofDate:      today.AddDate(0, 0, 7),
			CompletionDate: today.AddDate(0, 0, 14),
			MailDate:       &mail,
			Budget:         75,
			AdditionalInfo: &info,
			ApproverID:     &user,
			ContactID:      &user,
			InvoiceID:      &user,
			AudienceIDs:    []string{"aud-01", "aud-02"},
			CreatedAt:      today,
		},
	}
}

var Tasks = []models.Task{
	{ID: "task-01", ProjectID: "proj-01", TaskTypeID: "type-01"},
}

var TaskAttributes = []models.TaskAttribute{
	{ID: "attr-01", TaskID: "task-01", Key: "preferredSize", Value: "8.5x11"},
	{ID: "attr-02", TaskID: "task-01", Key: "quantity", Value: "100"},
	{ID: "attr-03", TaskID: "task-01", Key: "copy", Value: "Lorem ipsum."},
	{ID: "attr-04", TaskID: "task-01", Key: "file", Value: "https://example.com/docs/word.docx"},
}
