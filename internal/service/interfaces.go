package service

import (
	"context"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/models"
)

// DocumentService sends formalized documents through Diadoc.
type DocumentService interface {
	// SendUniversalTransferDocument runs the whole send pipeline for the
	// sample UTD: build, serialize, generate the title, sign, post and
	// record. The first failing step stops the pipeline and is named in the
	// returned *StepError.
	SendUniversalTransferDocument(ctx context.Context, req SendRequest) (SendResult, error)
}

// AddressService parses free-form Russian addresses.
type AddressService interface {
	Parse(ctx context.Context, address string) (models.RussianAddress, error)
	ParseAsync(ctx context.Context, address string) *api.Future[models.RussianAddress]
}

// IDGenerator produces CustomDocumentId values.
type IDGenerator interface {
	Generate() string
}
