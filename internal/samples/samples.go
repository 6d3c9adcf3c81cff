// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package samples holds the fixed demo data used by the sample commands.
package samples

import (
	"github.com/MKhiriev/go-diadoc/utd970"
)

const (
	SellerName = "ЗАО Очень Древний Папирус"
	SellerInn  = "7750370238"
	SellerKpp  = "770100101"

	BuyerName = "ООО Тестовое Юрлицо обычное"
	BuyerInn  = "9500000005"
	BuyerKpp  = "667301001"

	Region          = "66"
	DocumentNumber  = "134"
	DocumentDate    = "01.01.2020"
	CurrencyRouble  = "643"
	DocumentCreator = "Диадок. Пример отправки УПД 970"
	UnitPiece       = "796"
)

// BuildUserDataContract returns the demo UTD for the given sender box and
// signer certificate. The power-of-attorney mode decides the confirmation
// method and whether the signer carries an embedded storage reference.
// Equal inputs always produce equal documents.
func BuildUserDataContract(senderBoxID string, certificate []byte, mode utd970.PowerOfAttorneyMode) (utd970.UniversalTransferDocument, error) {
	return utd970.NewBuilder().
		WithFunction(utd970.FunctionInvoice).
		WithDocument(DocumentNumber, DocumentDate).
		WithCurrency(CurrencyRouble).
		WithSellers(organization(SellerName, SellerInn, SellerKpp)).
		WithBuyers(organization(BuyerName, BuyerInn, BuyerKpp)).
		WithTable(invoiceTable()).
		WithTransferInfo(utd970.TransferInfo{
			OperationInfo: "Operation Info",
			TransferDate:  DocumentDate,
		}).
		WithShipments(utd970.DocumentRequisites{
			DocumentName:   "Документ об отгрузке",
			DocumentNumber: "DocumentNumber",
			DocumentDate:   "01.02.2025",
		}).
		WithCreator(DocumentCreator).
		WithSigners(utd970.Signers{
			BoxId: senderBoxID,
			Signers: []utd970.Signer{{
				SignerPowersConfirmationMethod: utd970.ConfirmationMethodFor(mode),
				Certificate:                    utd970.Certificate{CertificateBytes: certificate},
				Position:                       utd970.SignerPosition{PositionSource: utd970.PositionSourceStorageByTitleTypeId},
				PowerOfAttorney:                utd970.SignerPowerOfAttorneyFor(mode),
			}},
		}).
		Build()
}

func organization(name, inn, kpp string) utd970.OrganizationInfo {
	return utd970.OrganizationInfo{
		OrganizationDetails: utd970.OrganizationDetails{
			OrgType: utd970.OrganizationTypeLegalEntity,
			OrgName: name,
			Inn:     inn,
			Kpp:     kpp,
			Address: utd970.Address{RussianAddress: &utd970.RussianAddress{Region: Region}},
		},
	}
}

// invoiceTable is one row of ten items at 10 each, VAT 10% on top.
func invoiceTable() utd970.InvoiceTable {
	return utd970.InvoiceTable{
		Total:                utd970.DecimalFromInt(110),
		TotalWithVatExcluded: utd970.DecimalFromInt(0),
		Vat:                  utd970.DecimalFromInt(10),
		Items: []utd970.InvoiceTableItem{{
			Product:                 "товар",
			Unit:                    UnitPiece,
			Quantity:                utd970.DecimalFromInt(10),
			Price:                   utd970.DecimalFromInt(10),
			TaxRate:                 utd970.TaxRateTenPercent,
			SubtotalWithVatExcluded: utd970.DecimalFromInt(100),
			Vat:                     utd970.DecimalFromInt(10),
			Subtotal:                utd970.DecimalFromInt(110),
		}},
	}
}
