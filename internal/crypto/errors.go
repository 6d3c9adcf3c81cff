package crypto

import "errors"

var (
	ErrCertificateMismatch = errors.New("certificate does not belong to the signing key")
	ErrUnsupportedKey      = errors.New("unsupported key type")
	ErrInvalidSignature    = errors.New("signature verification failed")
	ErrNoPEMBlock          = errors.New("no PEM block found")
)
