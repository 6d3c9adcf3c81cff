package store

import (
	"context"

	"github.com/MKhiriev/go-diadoc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/journal_mock.go -package=mock

// Journal keeps a local record of every document successfully posted to
// Diadoc.
type Journal interface {
	// Save records a submission. A second submission with the same message id
	// fails with ErrAlreadyRecorded.
	Save(ctx context.Context, submission models.Submission) error
	// GetByMessageID returns ErrNotFound when nothing was recorded under id.
	GetByMessageID(ctx context.Context, messageID string) (models.Submission, error)
	// List returns the newest submissions first. A non-positive limit means
	// no limit.
	List(ctx context.Context, limit int) ([]models.Submission, error)
}

// ErrorClassificator decides what a driver error means for the caller.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
