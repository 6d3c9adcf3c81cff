// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording and build metadata of the
// diadoc-samples command.
//
// All Msg* constants are hints printed next to a failed command so that the
// user knows what to fix. Keeping them in one place ensures consistent
// wording across commands.
package app

import (
	"errors"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/config"
	"github.com/MKhiriev/go-diadoc/internal/crypto"
	"github.com/MKhiriev/go-diadoc/internal/store"
	"github.com/MKhiriev/go-diadoc/utd970"
)

const (
	// MsgInvalidConfiguration is shown when a required setting is missing.
	MsgInvalidConfiguration = "configuration is incomplete, see -h or the DIADOC_* environment variables"

	// MsgUnauthorized is shown for HTTP 401 answers.
	MsgUnauthorized = "authentication failed, check login, password and client id"

	// MsgForbidden is shown for HTTP 403 answers, usually a box the account
	// cannot use.
	MsgForbidden = "access denied, check that the account may use both boxes"

	// MsgRejected is shown for HTTP 400 answers.
	MsgRejected = "the service rejected the request"

	// MsgServiceUnavailable is shown for 5xx answers.
	MsgServiceUnavailable = "the service is unavailable, try again later"

	// MsgCertificateMismatch is shown when the certificate does not belong to
	// the private key.
	MsgCertificateMismatch = "the certificate does not match the private key"

	// MsgInvalidSignature is shown when local verification fails.
	MsgInvalidSignature = "the signature did not pass local verification"

	// MsgInvalidDocument is shown when the user contract fails validation.
	MsgInvalidDocument = "the document is incomplete"

	// MsgAlreadyRecorded is shown when the journal already holds the message.
	MsgAlreadyRecorded = "the message is already recorded in the journal"

	// MsgNotFound is shown for lookups that matched nothing.
	MsgNotFound = "nothing found"
)

var errorMessages = []struct {
	target error
	msg    string
}{
	{config.ErrInvalidAPIConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidAuthConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidBoxesConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidSignerConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidPowerOfAttorneyConfigs, MsgInvalidConfiguration},
	{config.ErrInvalidStorageConfigs, MsgInvalidConfiguration},

	{api.ErrUnauthorized, MsgUnauthorized},
	{api.ErrForbidden, MsgForbidden},
	{api.ErrBadRequest, MsgRejected},
	{api.ErrInternalServerError, MsgServiceUnavailable},
	{api.ErrBadGateway, MsgServiceUnavailable},
	{api.ErrServiceUnavailable, MsgServiceUnavailable},

	{crypto.ErrCertificateMismatch, MsgCertificateMismatch},
	{crypto.ErrInvalidSignature, MsgInvalidSignature},
	{utd970.ErrInvalidDocument, MsgInvalidDocument},

	{store.ErrAlreadyRecorded, MsgAlreadyRecorded},
	{store.ErrNotFound, MsgNotFound},
	{api.ErrNotFound, MsgNotFound},
}

// MessageFor returns the hint for err, or an empty string when there is
// nothing more helpful to say than the error itself.
func MessageFor(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return ""
}
