package api

import (
	"context"

	"github.com/MKhiriev/go-diadoc/models"
)

// ParseRussianAddressAsync implements [Client]. The request is the same one
// ParseRussianAddress sends.
func (h *httpClient) ParseRussianAddressAsync(ctx context.Context, address string) *Future[models.RussianAddress] {
	return async(ctx, func(ctx context.Context) (models.RussianAddress, error) {
		return h.ParseRussianAddress(ctx, address)
	})
}
