package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/signer_mock.go -package=mock

// Signer produces a detached signature over document content.
//
// Real Diadoc submissions need a qualified signature made by an external
// cryptographic provider; the sample only depends on this interface, so any
// such provider can be plugged in.
type Signer interface {
	// Sign signs content on behalf of the owner of certificate (DER bytes).
	// An implementation may reject a certificate it holds no key for.
	Sign(ctx context.Context, content, certificate []byte) ([]byte, error)
}
