package utd970

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrganization(name, inn, kpp string) OrganizationInfo {
	return OrganizationInfo{OrganizationDetails: OrganizationDetails{
		OrgType: OrganizationTypeLegalEntity,
		OrgName: name,
		Inn:     inn,
		Kpp:     kpp,
		Address: Address{RussianAddress: &RussianAddress{Region: "66"}},
	}}
}

func testBuilder() *Builder {
	return NewBuilder().
		WithFunction(FunctionInvoice).
		WithDocument("134", "01.01.2020").
		WithCurrency("643").
		WithSellers(testOrganization("Seller", "7750370238", "770100101")).
		WithBuyers(testOrganization("Buyer", "9500000005", "667301001")).
		WithTable(InvoiceTable{
			Total: "110",
			Vat:   "10",
			Items: []InvoiceTableItem{{
				Product:  "товар",
				Unit:     "796",
				Quantity: "10",
				Price:    "10",
				TaxRate:  TaxRateTenPercent,
				Vat:      "10",
				Subtotal: "110",
			}},
		}).
		WithSigners(Signers{
			BoxId: "box-1",
			Signers: []Signer{{
				SignerPowersConfirmationMethod: ConfirmationOther,
				Certificate:                    Certificate{CertificateBytes: []byte{1, 2, 3}},
				Position:                       SignerPosition{PositionSource: PositionSourceStorageByTitleTypeId},
			}},
		})
}

func TestBuilder_Build(t *testing.T) {
	doc, err := testBuilder().Build()
	require.NoError(t, err)

	assert.Equal(t, FunctionInvoice, doc.Function)
	assert.Equal(t, "134", doc.DocumentNumber)
	assert.Equal(t, "01.01.2020", doc.DocumentDate)
	require.Len(t, doc.Sellers, 1)
	assert.Equal(t, "7750370238", doc.Sellers[0].OrganizationDetails.Inn)
	require.Len(t, doc.Table.Items, 1)
	assert.Equal(t, TaxRateTenPercent, doc.Table.Items[0].TaxRate)
	assert.Equal(t, "box-1", doc.Signers.BoxId)
}

func TestBuilder_BuildIsRepeatable(t *testing.T) {
	b := testBuilder()

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	firstXML, err := Serialize(first)
	require.NoError(t, err)
	secondXML, err := Serialize(second)
	require.NoError(t, err)
	assert.Equal(t, firstXML, secondXML)
}

func TestBuilder_CopiesInputs(t *testing.T) {
	items := []InvoiceTableItem{{Product: "товар", TaxRate: TaxRateWithoutVat}}
	cert := []byte{1, 2, 3}
	seller := testOrganization("Seller", "7750370238", "")

	b := testBuilder().
		WithSellers(seller).
		WithTable(InvoiceTable{Items: items}).
		WithSigners(Signers{Signers: []Signer{{
			SignerPowersConfirmationMethod: ConfirmationOther,
			Certificate:                    Certificate{CertificateBytes: cert},
			Position:                       SignerPosition{PositionSource: PositionSourceManual, Value: "Director"},
		}}})

	items[0].Product = "changed"
	cert[0] = 9
	seller.OrganizationDetails.Address.RussianAddress.Region = "77"

	doc, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "товар", doc.Table.Items[0].Product)
	assert.Equal(t, Base64Binary{1, 2, 3}, doc.Signers.Signers[0].Certificate.CertificateBytes)
	assert.Equal(t, "66", doc.Sellers[0].OrganizationDetails.Address.RussianAddress.Region)

	doc.Table.Items[0].Product = "mutated"
	again, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "товар", again.Table.Items[0].Product)
}

func TestBuilder_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Builder)
		wantMsg string
	}{
		{
			name:    "unknown function",
			mutate:  func(b *Builder) { b.WithFunction("XXX") },
			wantMsg: `unknown function "XXX"`,
		},
		{
			name:    "missing number",
			mutate:  func(b *Builder) { b.WithDocument("", "01.01.2020") },
			wantMsg: "document number is required",
		},
		{
			name:    "bad date",
			mutate:  func(b *Builder) { b.WithDocument("1", "2020-01-01") },
			wantMsg: "not in dd.mm.yyyy form",
		},
		{
			name:    "bad currency",
			mutate:  func(b *Builder) { b.WithCurrency("RUB") },
			wantMsg: "not a numeric currency code",
		},
		{
			name:    "no sellers",
			mutate:  func(b *Builder) { b.WithSellers() },
			wantMsg: "at least one seller is required",
		},
		{
			name:    "bad buyer inn",
			mutate:  func(b *Builder) { b.WithBuyers(testOrganization("Buyer", "123", "")) },
			wantMsg: `buyer 0: inn "123" must have 10 or 12 digits`,
		},
		{
			name:    "empty table",
			mutate:  func(b *Builder) { b.WithTable(InvoiceTable{}) },
			wantMsg: "invoice table has no items",
		},
		{
			name: "bad item amount",
			mutate: func(b *Builder) {
				b.WithTable(InvoiceTable{Items: []InvoiceTableItem{{Product: "p", TaxRate: TaxRateZero, Price: "ten"}}})
			},
			wantMsg: `item 0: "ten" is not a decimal`,
		},
		{
			name:    "no signers",
			mutate:  func(b *Builder) { b.WithSigners(Signers{}) },
			wantMsg: "at least one signer is required",
		},
		{
			name: "signer without certificate",
			mutate: func(b *Builder) {
				b.WithSigners(Signers{Signers: []Signer{{
					SignerPowersConfirmationMethod: ConfirmationOther,
					Position:                       SignerPosition{PositionSource: PositionSourceCertificate},
				}}})
			},
			wantMsg: "signer 0: certificate is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testBuilder()
			tt.mutate(b)

			_, err := b.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDocument))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBuilder_ReportsAllViolations(t *testing.T) {
	_, err := NewBuilder().Build()
	require.Error(t, err)

	for _, msg := range []string{
		"unknown function",
		"document number is required",
		"at least one seller is required",
		"at least one buyer is required",
		"invoice table has no items",
		"at least one signer is required",
	} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestNewDecimal(t *testing.T) {
	d, err := NewDecimal("110.50")
	require.NoError(t, err)
	assert.Equal(t, Decimal("110.50"), d)
	assert.True(t, d.Specified())

	_, err = NewDecimal("1,5")
	assert.Error(t, err)

	assert.Equal(t, Decimal("-7"), DecimalFromInt(-7))
	assert.False(t, Decimal("").Specified())
}
