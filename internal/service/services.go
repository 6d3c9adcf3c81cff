package service

import (
	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/config"
	"github.com/MKhiriev/go-diadoc/internal/crypto"
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/store"
)

type Services struct {
	DocumentService DocumentService
	AddressService  AddressService
}

// NewServices wires the services used by the sample commands. journal may be
// nil, in which case nothing is recorded locally.
func NewServices(client api.Client, signer crypto.Signer, journal store.Journal, ids IDGenerator, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	var opts []DocumentOption
	if journal != nil {
		opts = append(opts, WithJournal(journal))
	}
	if cfg.Signer.VerifyBeforeSend {
		opts = append(opts, WithLocalVerification())
	}

	return &Services{
		DocumentService: NewDocumentService(client, signer, ids, logger, opts...),
		AddressService:  NewAddressService(client, logger),
	}
}
