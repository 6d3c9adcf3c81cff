package service

import (
	"context"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/models"
)

type addressService struct {
	client api.Client
	logger *logger.Logger
}

func NewAddressService(client api.Client, logger *logger.Logger) AddressService {
	return &addressService{
		client: client,
		logger: logger,
	}
}

// Parse calls ParseRussianAddress and waits for the answer.
func (s *addressService) Parse(ctx context.Context, address string) (models.RussianAddress, error) {
	s.logger.Debug().Str("address", address).Msg("parsing address")
	return s.client.ParseRussianAddress(ctx, address)
}

// ParseAsync starts the same request as Parse and returns immediately.
func (s *addressService) ParseAsync(ctx context.Context, address string) *api.Future[models.RussianAddress] {
	s.logger.Debug().Str("address", address).Bool("async", true).Msg("parsing address")
	return s.client.ParseRussianAddressAsync(ctx, address)
}
