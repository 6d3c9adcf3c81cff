package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const authenticateEndpoint = "/V3/Authenticate"

type passwordCredentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Authenticate implements [Client]. It POSTs the credentials to
// POST /V3/Authenticate?type=password and returns the token from the body.
func (h *httpClient) Authenticate(ctx context.Context, login, password string) (string, error) {
	req := h.request(ctx, "").
		SetQueryParam("type", "password").
		SetHeader("Content-Type", "application/json").
		SetBody(passwordCredentials{Login: login, Password: password})

	resp, err := h.execute("authenticate", req, http.MethodPost, authenticateEndpoint)
	if err != nil {
		return "", err
	}

	token := strings.TrimSpace(string(resp.Body()))
	if token == "" {
		return "", errors.New("authenticate: empty token in response")
	}
	return token, nil
}

// AuthenticateAsync implements [Client].
func (h *httpClient) AuthenticateAsync(ctx context.Context, login, password string) *Future[string] {
	return async(ctx, func(ctx context.Context) (string, error) {
		return h.Authenticate(ctx, login, password)
	})
}
