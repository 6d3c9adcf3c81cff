package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-diadoc/internal/utils"
)

const (
	authScheme       = "DiadocAuth"
	clientIDParam    = "ddauth_api_client_id"
	tokenParam       = "ddauth_token"
	authHeaderName   = "Authorization"
	authParamDivider = ","
)

// diadocCredentials are the parameters of a DiadocAuth header.
type diadocCredentials struct {
	clientID string
	token    string
}

// auth checks the DiadocAuth header of every request against the sandbox
// client id. The token, when present, is stored in the request context under
// [utils.TokenCtxKey] for [Handler.requireToken].
//
// Requests are rejected with HTTP 401 Unauthorized when the header is absent,
// does not use the DiadocAuth scheme, or names another client id.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(authHeaderName)
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without authorization")
			return
		}

		creds, err := parseDiadocAuth(authHeader)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}
		if creds.clientID != h.sandbox.ClientID() {
			writeError(w, r, ErrUnknownClientID, "client id rejected")
			return
		}

		ctx := r.Context()
		if creds.token != "" {
			ctx = context.WithValue(ctx, utils.TokenCtxKey, creds.token)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireToken rejects requests whose token was not issued by the sandbox.
// On success the login the token belongs to is stored under
// [utils.LoginCtxKey].
func (h *Handler) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := utils.GetTokenFromContext(ctx)
		if !ok {
			writeError(w, r, ErrEmptyToken, "request without token")
			return
		}

		login, err := h.sandbox.CheckToken(token)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		ctx = context.WithValue(ctx, utils.LoginCtxKey, login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseDiadocAuth reads a header of the form
//
//	DiadocAuth ddauth_api_client_id=<id>, ddauth_token=<token>
//
// The token parameter is optional. Unknown parameters are ignored.
func parseDiadocAuth(header string) (diadocCredentials, error) {
	scheme, params, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || scheme != authScheme {
		return diadocCredentials{}, ErrInvalidAuthorizationHeader
	}

	var creds diadocCredentials
	for _, param := range strings.Split(params, authParamDivider) {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}
		key, value, ok := strings.Cut(param, "=")
		if !ok {
			return diadocCredentials{}, ErrInvalidAuthorizationHeader
		}
		switch strings.TrimSpace(key) {
		case clientIDParam:
			creds.clientID = strings.TrimSpace(value)
		case tokenParam:
			creds.token = strings.TrimSpace(value)
		}
	}

	if creds.clientID == "" {
		return diadocCredentials{}, ErrInvalidAuthorizationHeader
	}
	return creds, nil
}
