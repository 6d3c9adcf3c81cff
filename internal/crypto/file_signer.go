// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	stdcrypto "crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// FileSigner signs with a software key loaded from disk. It is meant for
// development and the sandbox, not for legally significant documents.
//
// RSA keys produce PKCS #1 v1.5 signatures, ECDSA keys ASN.1 signatures and
// Ed25519 keys plain Ed25519 signatures. RSA and ECDSA sign the SHA-256
// digest of the content.
type FileSigner struct {
	key  stdcrypto.Signer
	cert *x509.Certificate
}

// NewFileSigner pairs key with cert. The certificate must carry the public
// half of key.
func NewFileSigner(key stdcrypto.Signer, cert *x509.Certificate) (*FileSigner, error) {
	if cert == nil {
		return nil, fmt.Errorf("new file signer: certificate is required")
	}
	switch key.(type) {
	case *rsa.PrivateKey, *ecdsa.PrivateKey, ed25519.PrivateKey:
	default:
		return nil, fmt.Errorf("new file signer: %w: %T", ErrUnsupportedKey, key)
	}

	pub, ok := key.Public().(interface{ Equal(stdcrypto.PublicKey) bool })
	if !ok || !pub.Equal(cert.PublicKey) {
		return nil, fmt.Errorf("new file signer: %w", ErrCertificateMismatch)
	}
	return &FileSigner{key: key, cert: cert}, nil
}

// LoadPEM reads a PEM certificate and a PEM private key (PKCS #8, PKCS #1 or
// SEC 1).
func LoadPEM(certPath, keyPath string) (*FileSigner, error) {
	certPEM, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("read certificate: %w", err)
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	cert, err := parseCertificatePEM(certPEM)
	if err != nil {
		return nil, err
	}
	key, err := parsePrivateKeyPEM(keyPEM)
	if err != nil {
		return nil, err
	}
	return NewFileSigner(key, cert)
}

// LoadPKCS12 reads a PKCS #12 bundle holding exactly one key and certificate.
func LoadPKCS12(path, password string) (*FileSigner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pkcs12 bundle: %w", err)
	}
	return ParsePKCS12(data, password)
}

func ParsePKCS12(data []byte, password string) (*FileSigner, error) {
	key, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return nil, fmt.Errorf("decode pkcs12 bundle: %w", err)
	}
	signer, ok := key.(stdcrypto.Signer)
	if !ok {
		return nil, fmt.Errorf("decode pkcs12 bundle: %w: %T", ErrUnsupportedKey, key)
	}
	return NewFileSigner(signer, cert)
}

// Certificate returns the DER encoding of the signer certificate.
func (s *FileSigner) Certificate() []byte {
	return bytes.Clone(s.cert.Raw)
}

// Sign implements [Signer]. An empty certificate means "the one I hold".
func (s *FileSigner) Sign(ctx context.Context, content, certificate []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(certificate) > 0 && !bytes.Equal(certificate, s.cert.Raw) {
		return nil, fmt.Errorf("sign: %w", ErrCertificateMismatch)
	}

	message, opts := content, stdcrypto.SignerOpts(stdcrypto.Hash(0))
	if _, ok := s.key.(ed25519.PrivateKey); !ok {
		digest := sha256.Sum256(content)
		message, opts = digest[:], stdcrypto.SHA256
	}

	signature, err := s.key.Sign(rand.Reader, message, opts)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return signature, nil
}

// Verify checks a signature made by [FileSigner.Sign] against the DER
// certificate of the signer.
func Verify(content, signature, certificate []byte) error {
	cert, err := x509.ParseCertificate(certificate)
	if err != nil {
		return fmt.Errorf("verify: parse certificate: %w", err)
	}

	digest := sha256.Sum256(content)
	switch pub := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		if rsa.VerifyPKCS1v15(pub, stdcrypto.SHA256, digest[:], signature) != nil {
			return ErrInvalidSignature
		}
	case *ecdsa.PublicKey:
		if !ecdsa.VerifyASN1(pub, digest[:], signature) {
			return ErrInvalidSignature
		}
	case ed25519.PublicKey:
		if !ed25519.Verify(pub, content, signature) {
			return ErrInvalidSignature
		}
	default:
		return fmt.Errorf("verify: %w: %T", ErrUnsupportedKey, pub)
	}
	return nil
}

func parseCertificatePEM(data []byte) (*x509.Certificate, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("parse certificate: %w", ErrNoPEMBlock)
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("parse certificate: %w", err)
		}
		return cert, nil
	}
}

func parsePrivateKeyPEM(data []byte) (stdcrypto.Signer, error) {
	var block *pem.Block
	for {
		block, data = pem.Decode(data)
		if block == nil {
			return nil, fmt.Errorf("parse private key: %w", ErrNoPEMBlock)
		}
		if isPrivateKeyBlock(block.Type) {
			break
		}
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		signer, ok := key.(stdcrypto.Signer)
		if !ok {
			return nil, fmt.Errorf("parse private key: %w: %T", ErrUnsupportedKey, key)
		}
		return signer, nil
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("parse private key: %w: %s block", ErrUnsupportedKey, block.Type)
}

// isPrivateKeyBlock reports whether a PEM block holds a key. Blocks such as
// "EC PARAMETERS" written by openssl ahead of the key are skipped.
func isPrivateKeyBlock(blockType string) bool {
	switch blockType {
	case "PRIVATE KEY", "RSA PRIVATE KEY", "EC PRIVATE KEY":
		return true
	}
	return false
}
