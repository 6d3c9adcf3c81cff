package utd970

import "fmt"

// Function is the role a UTD plays.
type Function string

const (
	// FunctionInvoice is a UTD acting as an invoice (СЧФ).
	FunctionInvoice Function = "СЧФ"
	// FunctionInvoiceAndBasic is a UTD acting as an invoice and a primary
	// accounting document (СЧФДОП).
	FunctionInvoiceAndBasic Function = "СЧФДОП"
	// FunctionBasic is a UTD acting as a primary accounting document (ДОП).
	FunctionBasic Function = "ДОП"
)

func (f Function) valid() bool {
	switch f {
	case FunctionInvoice, FunctionInvoiceAndBasic, FunctionBasic:
		return true
	}
	return false
}

// TaxRate is a VAT rate as written in the document.
type TaxRate string

const (
	TaxRateWithoutVat     TaxRate = "без НДС"
	TaxRateZero           TaxRate = "0%"
	TaxRateFivePercent    TaxRate = "5%"
	TaxRateSevenPercent   TaxRate = "7%"
	TaxRateTenPercent     TaxRate = "10%"
	TaxRateTwentyPercent  TaxRate = "20%"
	TaxRateFiveFraction   TaxRate = "5/105"
	TaxRateSevenFraction  TaxRate = "7/107"
	TaxRateTenFraction    TaxRate = "10/110"
	TaxRateTwentyFraction TaxRate = "20/120"
	TaxRateTaxedByAgent   TaxRate = "НДС исчисляется налоговым агентом"
)

func (r TaxRate) valid() bool {
	switch r {
	case TaxRateWithoutVat, TaxRateZero, TaxRateFivePercent, TaxRateSevenPercent,
		TaxRateTenPercent, TaxRateTwentyPercent, TaxRateFiveFraction, TaxRateSevenFraction,
		TaxRateTenFraction, TaxRateTwentyFraction, TaxRateTaxedByAgent:
		return true
	}
	return false
}

// OrganizationType is the legal form of a party.
type OrganizationType int

const (
	OrganizationTypeIndividualEntrepreneur OrganizationType = 1
	OrganizationTypeLegalEntity            OrganizationType = 2
)

// PositionSource tells the service where to take the signer's position from.
type PositionSource string

const (
	// PositionSourceStorageByTitleTypeId fills the position from the
	// employee settings stored in Diadoc for this title type.
	PositionSourceStorageByTitleTypeId PositionSource = "StorageByTitleTypeId"
	// PositionSourceManual uses the value given in SignerPosition.Value.
	PositionSourceManual PositionSource = "Manual"
	// PositionSourceCertificate takes the position from the certificate.
	PositionSourceCertificate PositionSource = "Certificate"
)

// SignerPowersConfirmationMethod says how the signer's authority to sign is
// confirmed.
type SignerPowersConfirmationMethod int

const (
	ConfirmationBySignatureCertificate    SignerPowersConfirmationMethod = 1
	ConfirmationByElectronicDocument      SignerPowersConfirmationMethod = 2
	ConfirmationInDocumentContent         SignerPowersConfirmationMethod = 3
	ConfirmationByAttachedPowerOfAttorney SignerPowersConfirmationMethod = 4
	ConfirmationByInformationSystem       SignerPowersConfirmationMethod = 5
	ConfirmationOther                     SignerPowersConfirmationMethod = 6
)

func (m SignerPowersConfirmationMethod) String() string {
	return fmt.Sprintf("%d", int(m))
}

func (m SignerPowersConfirmationMethod) valid() bool {
	return m >= ConfirmationBySignatureCertificate && m <= ConfirmationOther
}
