package samples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diadoc/utd970"
)

func TestBuildUserDataContract(t *testing.T) {
	cert := []byte("certificate")

	doc, err := BuildUserDataContract("sender-box", cert, utd970.NoPowerOfAttorney{})
	require.NoError(t, err)

	assert.Equal(t, utd970.FunctionInvoice, doc.Function)
	assert.Equal(t, "134", doc.DocumentNumber)
	assert.Equal(t, "643", doc.Currency)
	require.Len(t, doc.Sellers, 1)
	assert.Equal(t, SellerName, doc.Sellers[0].OrganizationDetails.OrgName)
	assert.Equal(t, "7750370238", doc.Sellers[0].OrganizationDetails.Inn)
	require.Len(t, doc.Buyers, 1)
	assert.Equal(t, "9500000005", doc.Buyers[0].OrganizationDetails.Inn)
	assert.Equal(t, "66", doc.Buyers[0].OrganizationDetails.Address.RussianAddress.Region)

	require.Len(t, doc.Table.Items, 1)
	item := doc.Table.Items[0]
	assert.Equal(t, utd970.Decimal("10"), item.Quantity)
	assert.Equal(t, utd970.Decimal("110"), item.Subtotal)
	assert.Equal(t, utd970.TaxRateTenPercent, item.TaxRate)

	assert.Equal(t, "sender-box", doc.Signers.BoxId)
	require.Len(t, doc.Signers.Signers, 1)
	signer := doc.Signers.Signers[0]
	assert.Equal(t, utd970.ConfirmationOther, signer.SignerPowersConfirmationMethod)
	assert.Equal(t, utd970.Base64Binary(cert), signer.Certificate.CertificateBytes)
	assert.Nil(t, signer.PowerOfAttorney)
}

func TestBuildUserDataContract_PowerOfAttorneyModes(t *testing.T) {
	tests := []struct {
		name         string
		mode         utd970.PowerOfAttorneyMode
		wantMethod   utd970.SignerPowersConfirmationMethod
		wantEmbedded bool
	}{
		{name: "none", mode: utd970.NoPowerOfAttorney{}, wantMethod: 6},
		{name: "file as meta", mode: utd970.PowerOfAttorneyAsFile{Content: []byte("c"), Signature: []byte("s")}, wantMethod: 4},
		{
			name:         "in content",
			mode:         utd970.PowerOfAttorneyInContent{IssuerInn: SellerInn, RegistrationNumber: "reg"},
			wantMethod:   3,
			wantEmbedded: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := BuildUserDataContract("box", []byte{1}, tt.mode)
			require.NoError(t, err)

			signer := doc.Signers.Signers[0]
			assert.Equal(t, tt.wantMethod, signer.SignerPowersConfirmationMethod)
			if !tt.wantEmbedded {
				assert.Nil(t, signer.PowerOfAttorney)
				return
			}
			require.NotNil(t, signer.PowerOfAttorney)
			storage := signer.PowerOfAttorney.Electronic.Storage
			assert.False(t, storage.UseDefault)
			assert.Equal(t, "reg", storage.RegistrationNumber)
		})
	}
}

func TestBuildUserDataContract_Idempotent(t *testing.T) {
	mode := utd970.PowerOfAttorneyInContent{IssuerInn: SellerInn, RegistrationNumber: "reg"}

	first, err := BuildUserDataContract("box", []byte{1, 2}, mode)
	require.NoError(t, err)
	second, err := BuildUserDataContract("box", []byte{1, 2}, mode)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	firstXML, err := utd970.Serialize(first)
	require.NoError(t, err)
	secondXML, err := utd970.Serialize(second)
	require.NoError(t, err)
	assert.Equal(t, firstXML, secondXML)
}

func TestBuildUserDataContract_MissingCertificate(t *testing.T) {
	_, err := BuildUserDataContract("box", nil, nil)
	assert.ErrorIs(t, err, utd970.ErrInvalidDocument)
}
