package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diadoc/models"
)

const parseRussianAddressEndpoint = "/ParseRussianAddress"

// ParseRussianAddress implements [Client]. It sends
// GET /ParseRussianAddress?address=<address> without a user token.
func (h *httpClient) ParseRussianAddress(ctx context.Context, address string) (models.RussianAddress, error) {
	req := h.request(ctx, "").
		SetQueryParam("address", address).
		SetHeader("Accept", "application/json")

	resp, err := h.execute("parse russian address", req, http.MethodGet, parseRussianAddressEndpoint)
	if err != nil {
		return models.RussianAddress{}, err
	}

	var parsed models.RussianAddress
	if err = json.Unmarshal(resp.Body(), &parsed); err != nil {
		return models.RussianAddress{}, fmt.Errorf("decode russian address: %w", err)
	}
	return parsed, nil
}
