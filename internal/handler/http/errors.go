// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// DiadocAuth "Authorization" header. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request has no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header does not use
	// the DiadocAuth scheme or one of its parameters is malformed.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnknownClientID is returned when ddauth_api_client_id does not match
	// the sandbox client id.
	ErrUnknownClientID = errors.New("unknown `ddauth_api_client_id`")

	// ErrEmptyToken is returned by token-protected endpoints when the header
	// carries no ddauth_token.
	ErrEmptyToken = errors.New("empty `ddauth_token` in `Authorization` header")
)
