// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package api is a client for the Diadoc HTTP API.
//
// The main abstraction is [Client]. Every network operation comes in two
// forms: a blocking method that returns once the response is decoded, and an
// Async method that starts the same request on its own goroutine and returns
// a [Future]. Both forms build identical requests. Cancelling the context
// passed to either form aborts the request in flight.
//
// Non-2xx responses are returned as [*ResponseError], which carries the
// endpoint and status and unwraps to one of the sentinel errors in errors.go,
// so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401). There are
// no retries: every failure reaches the caller.
package api

import (
	"context"

	"github.com/MKhiriev/go-diadoc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/api_client_mock.go -package=mock

// Client is the Diadoc API surface used by the samples.
type Client interface {
	// Authenticate exchanges a login and password for an opaque token that
	// is passed to every authenticated call.
	Authenticate(ctx context.Context, login, password string) (string, error)
	AuthenticateAsync(ctx context.Context, login, password string) *Future[string]

	// GenerateTitleXml turns a simplified user contract into a full title
	// of the requested document type.
	GenerateTitleXml(ctx context.Context, token string, req models.TitleRequest) (models.GeneratedFile, error)
	GenerateTitleXmlAsync(ctx context.Context, token string, req models.TitleRequest) *Future[models.GeneratedFile]

	// PostMessage submits a message and returns the server-side view with
	// the identifiers the service assigned.
	PostMessage(ctx context.Context, token string, msg models.MessageToPost) (models.Message, error)
	PostMessageAsync(ctx context.Context, token string, msg models.MessageToPost) *Future[models.Message]

	// ParseRussianAddress splits a free-form address into its parts. The
	// call does not need a user token.
	ParseRussianAddress(ctx context.Context, address string) (models.RussianAddress, error)
	ParseRussianAddressAsync(ctx context.Context, address string) *Future[models.RussianAddress]
}
