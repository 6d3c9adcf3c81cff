package utd970

import (
	"encoding/base64"
	"encoding/xml"
)

// UniversalTransferDocument is the user contract of a UTD seller title.
type UniversalTransferDocument struct {
	XMLName         xml.Name             `xml:"UniversalTransferDocument"`
	Function        Function             `xml:"Function,attr"`
	DocumentDate    string               `xml:"DocumentDate,attr"`
	DocumentNumber  string               `xml:"DocumentNumber,attr"`
	Currency        string               `xml:"Currency,attr"`
	DocumentCreator string               `xml:"DocumentCreator,attr,omitempty"`
	Sellers         []OrganizationInfo   `xml:"Sellers>Seller"`
	Buyers          []OrganizationInfo   `xml:"Buyers>Buyer"`
	Shipments       []DocumentRequisites `xml:"DocumentShipments>DocumentShipment,omitempty"`
	Table           InvoiceTable         `xml:"Table"`
	TransferInfo    *TransferInfo        `xml:"TransferInfo,omitempty"`
	Signers         Signers              `xml:"Signers"`
}

// OrganizationInfo is a party of the document.
type OrganizationInfo struct {
	OrganizationDetails OrganizationDetails `xml:"OrganizationDetails"`
}

type OrganizationDetails struct {
	OrgType OrganizationType `xml:"OrgType,attr"`
	OrgName string           `xml:"OrgName,attr"`
	Inn     string           `xml:"Inn,attr"`
	Kpp     string           `xml:"Kpp,attr,omitempty"`
	Address Address          `xml:"Address"`
}

type Address struct {
	RussianAddress *RussianAddress `xml:"RussianAddress,omitempty"`
}

// RussianAddress is the structured address of a party. Region is the
// two-digit region code and is the only required field.
type RussianAddress struct {
	ZipCode   string `xml:"ZipCode,attr,omitempty"`
	Region    string `xml:"Region,attr"`
	Territory string `xml:"Territory,attr,omitempty"`
	City      string `xml:"City,attr,omitempty"`
	Locality  string `xml:"Locality,attr,omitempty"`
	Street    string `xml:"Street,attr,omitempty"`
	Building  string `xml:"Building,attr,omitempty"`
	Block     string `xml:"Block,attr,omitempty"`
	Apartment string `xml:"Apartment,attr,omitempty"`
}

// InvoiceTable holds the goods rows and the document totals.
type InvoiceTable struct {
	Total                Decimal            `xml:"Total,attr,omitempty"`
	TotalWithVatExcluded Decimal            `xml:"TotalWithVatExcluded,attr,omitempty"`
	Vat                  Decimal            `xml:"Vat,attr,omitempty"`
	Items                []InvoiceTableItem `xml:"Item"`
}

type InvoiceTableItem struct {
	Product                 string  `xml:"Product,attr"`
	Unit                    string  `xml:"Unit,attr,omitempty"`
	Quantity                Decimal `xml:"Quantity,attr,omitempty"`
	Price                   Decimal `xml:"Price,attr,omitempty"`
	TaxRate                 TaxRate `xml:"TaxRate,attr"`
	SubtotalWithVatExcluded Decimal `xml:"SubtotalWithVatExcluded,attr,omitempty"`
	Vat                     Decimal `xml:"Vat,attr,omitempty"`
	Subtotal                Decimal `xml:"Subtotal,attr,omitempty"`
}

// TransferInfo describes the shipment operation.
type TransferInfo struct {
	OperationInfo string `xml:"OperationInfo,attr"`
	TransferDate  string `xml:"TransferDate,attr,omitempty"`
}

// DocumentRequisites references a document by name, number and date.
type DocumentRequisites struct {
	DocumentName   string `xml:"DocumentName,attr"`
	DocumentNumber string `xml:"DocumentNumber,attr,omitempty"`
	DocumentDate   string `xml:"DocumentDate,attr"`
}

type Signers struct {
	BoxId   string   `xml:"BoxId,attr,omitempty"`
	Signers []Signer `xml:"Signer"`
}

type Signer struct {
	SignerPowersConfirmationMethod SignerPowersConfirmationMethod `xml:"SignerPowersConfirmationMethod,attr"`
	Certificate                    Certificate                    `xml:"Certificate"`
	Position                       SignerPosition                 `xml:"Position"`
	PowerOfAttorney                *PowerOfAttorney               `xml:"PowerOfAttorney,omitempty"`
}

type SignerPosition struct {
	PositionSource PositionSource `xml:"PositionSource,attr"`
	Value          string         `xml:"Value,attr,omitempty"`
}

// Certificate carries the DER-encoded signer certificate.
type Certificate struct {
	CertificateBytes Base64Binary `xml:"CertificateBytes,attr"`
}

type PowerOfAttorney struct {
	Electronic *ElectronicPowerOfAttorney `xml:"Electronic,omitempty"`
}

type ElectronicPowerOfAttorney struct {
	Storage *StorageFullId `xml:"Storage,omitempty"`
}

// StorageFullId points at a machine-readable power of attorney registered in
// the federal storage.
type StorageFullId struct {
	UseDefault         bool   `xml:"UseDefault,attr"`
	IssuerInn          string `xml:"FullId>IssuerInn,omitempty"`
	RegistrationNumber string `xml:"FullId>RegistrationNumber,omitempty"`
}

// Base64Binary is written to XML attributes as standard base64.
type Base64Binary []byte

func (b Base64Binary) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return xml.Attr{Name: name, Value: base64.StdEncoding.EncodeToString(b)}, nil
}

func (b *Base64Binary) UnmarshalXMLAttr(attr xml.Attr) error {
	decoded, err := base64.StdEncoding.DecodeString(attr.Value)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
