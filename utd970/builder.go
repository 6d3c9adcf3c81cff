package utd970

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"time"
)

const dateLayout = "02.01.2006"

var (
	ErrInvalidDocument = errors.New("invalid universal transfer document")

	innPattern      = regexp.MustCompile(`^(\d{10}|\d{12})$`)
	currencyPattern = regexp.MustCompile(`^\d{3}$`)
)

// Builder assembles a UniversalTransferDocument. Every slice passed to a
// With method is copied, so the caller may reuse its own buffers.
type Builder struct {
	doc UniversalTransferDocument
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithFunction(f Function) *Builder {
	b.doc.Function = f
	return b
}

// WithDocument sets the document number and its date in dd.mm.yyyy form.
func (b *Builder) WithDocument(number, date string) *Builder {
	b.doc.DocumentNumber = number
	b.doc.DocumentDate = date
	return b
}

// WithCurrency sets the numeric OKV currency code, e.g. "643" for roubles.
func (b *Builder) WithCurrency(code string) *Builder {
	b.doc.Currency = code
	return b
}

func (b *Builder) WithCreator(creator string) *Builder {
	b.doc.DocumentCreator = creator
	return b
}

func (b *Builder) WithSellers(sellers ...OrganizationInfo) *Builder {
	b.doc.Sellers = copyOrganizations(sellers)
	return b
}

func (b *Builder) WithBuyers(buyers ...OrganizationInfo) *Builder {
	b.doc.Buyers = copyOrganizations(buyers)
	return b
}

func (b *Builder) WithShipments(shipments ...DocumentRequisites) *Builder {
	b.doc.Shipments = slices.Clone(shipments)
	return b
}

func (b *Builder) WithTable(table InvoiceTable) *Builder {
	table.Items = slices.Clone(table.Items)
	b.doc.Table = table
	return b
}

func (b *Builder) WithTransferInfo(info TransferInfo) *Builder {
	b.doc.TransferInfo = &info
	return b
}

func (b *Builder) WithSigners(signers Signers) *Builder {
	signers.Signers = copySigners(signers.Signers)
	b.doc.Signers = signers
	return b
}

// Build validates the collected data and returns an independent copy of the
// document. All violations are reported together.
func (b *Builder) Build() (UniversalTransferDocument, error) {
	if err := validate(b.doc); err != nil {
		return UniversalTransferDocument{}, err
	}
	return cloneDocument(b.doc), nil
}

func validate(doc UniversalTransferDocument) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidDocument}, args...)...))
	}

	if !doc.Function.valid() {
		fail("unknown function %q", doc.Function)
	}
	if doc.DocumentNumber == "" {
		fail("document number is required")
	}
	if _, err := time.Parse(dateLayout, doc.DocumentDate); err != nil {
		fail("document date %q is not in dd.mm.yyyy form", doc.DocumentDate)
	}
	if !currencyPattern.MatchString(doc.Currency) {
		fail("currency %q is not a numeric currency code", doc.Currency)
	}

	if len(doc.Sellers) == 0 {
		fail("at least one seller is required")
	}
	for i, org := range doc.Sellers {
		validateOrganization(fmt.Sprintf("seller %d", i), org.OrganizationDetails, fail)
	}
	if len(doc.Buyers) == 0 {
		fail("at least one buyer is required")
	}
	for i, org := range doc.Buyers {
		validateOrganization(fmt.Sprintf("buyer %d", i), org.OrganizationDetails, fail)
	}

	if len(doc.Table.Items) == 0 {
		fail("invoice table has no items")
	}
	for _, d := range []Decimal{doc.Table.Total, doc.Table.TotalWithVatExcluded, doc.Table.Vat} {
		if !d.valid() {
			fail("table totals: %q is not a decimal", d)
		}
	}
	for i, item := range doc.Table.Items {
		if item.Product == "" {
			fail("item %d: product is required", i)
		}
		if !item.TaxRate.valid() {
			fail("item %d: unknown tax rate %q", i, item.TaxRate)
		}
		for _, d := range []Decimal{item.Quantity, item.Price, item.SubtotalWithVatExcluded, item.Vat, item.Subtotal} {
			if !d.valid() {
				fail("item %d: %q is not a decimal", i, d)
			}
		}
	}

	for i, s := range doc.Shipments {
		if s.DocumentName == "" {
			fail("shipment %d: document name is required", i)
		}
		if _, err := time.Parse(dateLayout, s.DocumentDate); err != nil {
			fail("shipment %d: date %q is not in dd.mm.yyyy form", i, s.DocumentDate)
		}
	}

	if len(doc.Signers.Signers) == 0 {
		fail("at least one signer is required")
	}
	for i, s := range doc.Signers.Signers {
		if len(s.Certificate.CertificateBytes) == 0 {
			fail("signer %d: certificate is required", i)
		}
		if !s.SignerPowersConfirmationMethod.valid() {
			fail("signer %d: unknown powers confirmation method %d", i, s.SignerPowersConfirmationMethod)
		}
		if s.Position.PositionSource == "" {
			fail("signer %d: position source is required", i)
		}
	}

	return errors.Join(errs...)
}

func validateOrganization(who string, d OrganizationDetails, fail func(string, ...any)) {
	if d.OrgName == "" {
		fail("%s: name is required", who)
	}
	if !innPattern.MatchString(d.Inn) {
		fail("%s: inn %q must have 10 or 12 digits", who, d.Inn)
	}
	if d.Address.RussianAddress == nil || d.Address.RussianAddress.Region == "" {
		fail("%s: address region is required", who)
	}
}

func cloneDocument(doc UniversalTransferDocument) UniversalTransferDocument {
	doc.Sellers = copyOrganizations(doc.Sellers)
	doc.Buyers = copyOrganizations(doc.Buyers)
	doc.Shipments = slices.Clone(doc.Shipments)
	doc.Table.Items = slices.Clone(doc.Table.Items)
	if doc.TransferInfo != nil {
		info := *doc.TransferInfo
		doc.TransferInfo = &info
	}
	doc.Signers.Signers = copySigners(doc.Signers.Signers)
	return doc
}

func copyOrganizations(in []OrganizationInfo) []OrganizationInfo {
	if in == nil {
		return nil
	}
	out := make([]OrganizationInfo, len(in))
	for i, org := range in {
		if a := org.OrganizationDetails.Address.RussianAddress; a != nil {
			addr := *a
			org.OrganizationDetails.Address.RussianAddress = &addr
		}
		out[i] = org
	}
	return out
}

func copySigners(in []Signer) []Signer {
	if in == nil {
		return nil
	}
	out := make([]Signer, len(in))
	for i, s := range in {
		s.Certificate.CertificateBytes = slices.Clone(s.Certificate.CertificateBytes)
		s.PowerOfAttorney = clonePowerOfAttorney(s.PowerOfAttorney)
		out[i] = s
	}
	return out
}

func clonePowerOfAttorney(p *PowerOfAttorney) *PowerOfAttorney {
	if p == nil {
		return nil
	}
	out := &PowerOfAttorney{}
	if p.Electronic != nil {
		out.Electronic = &ElectronicPowerOfAttorney{}
		if p.Electronic.Storage != nil {
			storage := *p.Electronic.Storage
			out.Electronic.Storage = &storage
		}
	}
	return out
}
