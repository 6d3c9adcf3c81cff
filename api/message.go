package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diadoc/models"
)

const postMessageEndpoint = "/V3/PostMessage"

// PostMessage implements [Client]. It POSTs msg as JSON to
// POST /V3/PostMessage and decodes the stored message.
func (h *httpClient) PostMessage(ctx context.Context, token string, msg models.MessageToPost) (models.Message, error) {
	req := h.request(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(msg)

	resp, err := h.execute("post message", req, http.MethodPost, postMessageEndpoint)
	if err != nil {
		return models.Message{}, err
	}

	var message models.Message
	if err = json.Unmarshal(resp.Body(), &message); err != nil {
		return models.Message{}, fmt.Errorf("decode post message response: %w", err)
	}
	return message, nil
}

// PostMessageAsync implements [Client].
func (h *httpClient) PostMessageAsync(ctx context.Context, token string, msg models.MessageToPost) *Future[models.Message] {
	return async(ctx, func(ctx context.Context) (models.Message, error) {
		return h.PostMessage(ctx, token, msg)
	})
}
