package models

import "time"

// Submission is a locally journaled record of a successfully posted document.
type Submission struct {
	MessageID        string
	EntityID         string
	Title            string
	DocumentType     DocumentType
	FromBoxID        string
	ToBoxID          string
	CustomDocumentID string
	PowerOfAttorney  string
	CreatedAt        time.Time
}
