package sandbox

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid login or password")
	ErrUnknownToken           = errors.New("unknown or expired token")
	ErrUnsupportedDocument    = errors.New("unsupported document type")
	ErrInvalidContract        = errors.New("invalid user contract")
	ErrInvalidMessage         = errors.New("invalid message")
	ErrInvalidPowerOfAttorney = errors.New("invalid power of attorney")
	ErrEmptyAddress           = errors.New("empty address")
)
