package http

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"math/big"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/crypto"
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/service"
	"github.com/MKhiriev/go-diadoc/internal/utils"
	"github.com/MKhiriev/go-diadoc/utd970"
)

func newSandboxClient(t *testing.T) (api.Client, string) {
	t.Helper()
	router, _ := newTestRouter(t)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	client, err := api.NewHTTPClient(api.Config{
		BaseURL:  srv.URL,
		ClientID: testClientID,
		Timeout:  5 * time.Second,
	}, zerolog.Nop())
	require.NoError(t, err)

	token, err := client.Authenticate(context.Background(), testLogin, testPassword)
	require.NoError(t, err)
	return client, token
}

func newTestSigner(t *testing.T) *crypto.FileSigner {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "sandbox signer"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	signer, err := crypto.NewFileSigner(key, cert)
	require.NoError(t, err)
	return signer
}

func TestSandbox_SendUniversalTransferDocument(t *testing.T) {
	client, token := newSandboxClient(t)
	signer := newTestSigner(t)
	docs := service.NewDocumentService(client, signer, utils.NewUUIDGenerator(), logger.Nop(), service.WithLocalVerification())

	modes := []utd970.PowerOfAttorneyMode{
		utd970.NoPowerOfAttorney{},
		utd970.PowerOfAttorneyAsFile{Content: []byte("poa"), Signature: []byte("poa-signature")},
		utd970.PowerOfAttorneyInContent{IssuerInn: "7750370238", RegistrationNumber: "reg-1"},
	}

	for _, mode := range modes {
		t.Run(string(utd970.KindOf(mode)), func(t *testing.T) {
			result, err := docs.SendUniversalTransferDocument(context.Background(), service.SendRequest{
				Token:           token,
				FromBoxID:       "from-box",
				ToBoxID:         "to-box",
				Certificate:     signer.Certificate(),
				PowerOfAttorney: mode,
			})
			require.NoError(t, err)

			assert.NotEmpty(t, result.Message.MessageId)
			assert.Equal(t, "УПД №134 от 01.01.2020", result.Submission.Title)
			assert.NotEmpty(t, result.Submission.CustomDocumentID)
			assert.Equal(t, string(utd970.KindOf(mode)), result.Submission.PowerOfAttorney)

			signatures := result.Message.SignatureEntities()
			require.Len(t, signatures, 1)
			assert.Equal(t, result.Document.EntityId, signatures[0].ParentEntityId)
		})
	}
}

func TestSandbox_SendWithForgedToken(t *testing.T) {
	client, _ := newSandboxClient(t)
	signer := newTestSigner(t)
	docs := service.NewDocumentService(client, signer, utils.NewUUIDGenerator(), logger.Nop())

	_, err := docs.SendUniversalTransferDocument(context.Background(), service.SendRequest{
		Token:       "forged",
		FromBoxID:   "from-box",
		ToBoxID:     "to-box",
		Certificate: signer.Certificate(),
	})

	var stepErr *service.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, service.StepTitle, stepErr.Step)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestSandbox_ParseRussianAddress_BlockingAndAsyncAgree(t *testing.T) {
	client, _ := newSandboxClient(t)
	addresses := service.NewAddressService(client, logger.Nop())
	address := "620000, Свердловская обл., г. Екатеринбург, ул. Малопрудная, д. 5"

	blocking, err := addresses.Parse(context.Background(), address)
	require.NoError(t, err)

	async, err := addresses.ParseAsync(context.Background(), address).Wait(context.Background())
	require.NoError(t, err)

	assert.Equal(t, blocking, async)
	assert.Equal(t, "66", blocking.Region)
	assert.Equal(t, "Малопрудная", blocking.Street)
}
