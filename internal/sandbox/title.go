package sandbox

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/MKhiriev/go-diadoc/models"
	"github.com/MKhiriev/go-diadoc/utd970"
)

const (
	titleRoot       = "Файл"
	titleFilePrefix = "ON_NSCHFDOPPR"
	titleFormat     = "5.03"
	titleKND        = "1115131"
)

// GenerateTitle converts a simplified UTD user contract into a seller title.
// Only the sender title (index 0) of the order No. 970 UTD is supported.
func (s *Sandbox) GenerateTitle(boxID string, docType models.DocumentType, titleIndex int, contract []byte) (models.GeneratedFile, error) {
	if err := checkDocumentType(docType, titleIndex); err != nil {
		return models.GeneratedFile{}, err
	}
	if boxID == "" {
		return models.GeneratedFile{}, fmt.Errorf("%w: box id is required", ErrInvalidContract)
	}

	in := etree.NewDocument()
	if err := in.ReadFromBytes(contract); err != nil {
		return models.GeneratedFile{}, fmt.Errorf("%w: %w", ErrInvalidContract, err)
	}
	udc := in.Root()
	if udc == nil || udc.Tag != "UniversalTransferDocument" {
		return models.GeneratedFile{}, fmt.Errorf("%w: root element must be UniversalTransferDocument", ErrInvalidContract)
	}
	if err := checkContract(udc, docType.Function); err != nil {
		return models.GeneratedFile{}, err
	}

	fileID := strings.Join([]string{
		titleFilePrefix,
		boxID,
		compactDate(udc.SelectAttrValue("DocumentDate", "")),
		s.newID(),
	}, "_")

	out := buildTitle(udc, fileID)
	content, err := out.WriteToBytes()
	if err != nil {
		return models.GeneratedFile{}, fmt.Errorf("write title: %w", err)
	}

	s.logger.Debug().Str("file_id", fileID).Str("box_id", boxID).Msg("title generated")
	return models.GeneratedFile{FileName: fileID + ".xml", Content: content}, nil
}

func checkDocumentType(docType models.DocumentType, titleIndex int) error {
	if docType.TypeNamedId != utd970.TypeNamedId || docType.Version != utd970.Version {
		return fmt.Errorf("%w: %s", ErrUnsupportedDocument, docType)
	}
	switch utd970.Function(docType.Function) {
	case utd970.FunctionInvoice, utd970.FunctionInvoiceAndBasic, utd970.FunctionBasic:
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDocument, docType)
	}
	if titleIndex != 0 {
		return fmt.Errorf("%w: title index %d", ErrUnsupportedDocument, titleIndex)
	}
	return nil
}

func checkContract(udc *etree.Element, function string) error {
	var missing []string
	for _, attr := range []string{"Function", "DocumentNumber", "DocumentDate", "Currency"} {
		if udc.SelectAttrValue(attr, "") == "" {
			missing = append(missing, "@"+attr)
		}
	}
	for _, path := range []string{"Sellers/Seller", "Buyers/Buyer", "Table/Item", "Signers/Signer"} {
		if udc.FindElement(path) == nil {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidContract, strings.Join(missing, ", "))
	}

	if got := udc.SelectAttrValue("Function", ""); got != function {
		return fmt.Errorf("%w: contract function %q does not match requested %q", ErrInvalidContract, got, function)
	}
	return nil
}

func buildTitle(udc *etree.Element, fileID string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	file := doc.CreateElement(titleRoot)
	file.CreateAttr("ИдФайл", fileID)
	file.CreateAttr("ВерсФорм", titleFormat)
	file.CreateAttr("ВерсПрог", "go-diadoc sandbox")

	body := file.CreateElement("Документ")
	body.CreateAttr("КНД", titleKND)
	body.CreateAttr("Функция", udc.SelectAttrValue("Function", ""))
	setAttr(body, "НаимЭконСубСост", udc.SelectAttrValue("DocumentCreator", ""))

	invoice := body.CreateElement("СвСчФакт")
	invoice.CreateAttr("НомерДок", udc.SelectAttrValue("DocumentNumber", ""))
	invoice.CreateAttr("ДатаДок", udc.SelectAttrValue("DocumentDate", ""))
	for _, seller := range udc.FindElements("Sellers/Seller/OrganizationDetails") {
		addParty(invoice.CreateElement("СвПрод"), seller)
	}
	for _, buyer := range udc.FindElements("Buyers/Buyer/OrganizationDetails") {
		addParty(invoice.CreateElement("СвПокуп"), buyer)
	}
	invoice.CreateElement("ДенИзм").CreateAttr("КодОКВ", udc.SelectAttrValue("Currency", ""))

	table := body.CreateElement("ТаблСчФакт")
	for i, item := range udc.FindElements("Table/Item") {
		row := table.CreateElement("СведТов")
		row.CreateAttr("НомСтр", strconv.Itoa(i+1))
		row.CreateAttr("НаимТов", item.SelectAttrValue("Product", ""))
		setAttr(row, "ОКЕИ_Тов", item.SelectAttrValue("Unit", ""))
		setAttr(row, "КолТов", item.SelectAttrValue("Quantity", ""))
		setAttr(row, "ЦенаТов", item.SelectAttrValue("Price", ""))
		setAttr(row, "СтТовБезНДС", item.SelectAttrValue("SubtotalWithVatExcluded", ""))
		row.CreateAttr("НалСт", item.SelectAttrValue("TaxRate", ""))
		setAttr(row, "СумНал", item.SelectAttrValue("Vat", ""))
		setAttr(row, "СтТовУчНал", item.SelectAttrValue("Subtotal", ""))
	}
	if t := udc.SelectElement("Table"); t != nil {
		total := table.CreateElement("ВсегоОпл")
		setAttr(total, "СтТовБезНДСВсего", t.SelectAttrValue("TotalWithVatExcluded", ""))
		setAttr(total, "СтТовУчНалВсего", t.SelectAttrValue("Total", ""))
		setAttr(total, "СумНалВсего", t.SelectAttrValue("Vat", ""))
	}

	if info := udc.SelectElement("TransferInfo"); info != nil {
		transfer := body.CreateElement("СвПродПер").CreateElement("СвПер")
		transfer.CreateAttr("СодОпер", info.SelectAttrValue("OperationInfo", ""))
		setAttr(transfer, "ДатаПер", info.SelectAttrValue("TransferDate", ""))
		for _, shipment := range udc.FindElements("DocumentShipments/DocumentShipment") {
			basis := transfer.CreateElement("ОснПер")
			basis.CreateAttr("РеквНаимДок", shipment.SelectAttrValue("DocumentName", ""))
			setAttr(basis, "РеквНомерДок", shipment.SelectAttrValue("DocumentNumber", ""))
			basis.CreateAttr("РеквДатаДок", shipment.SelectAttrValue("DocumentDate", ""))
		}
	}

	for _, signer := range udc.FindElements("Signers/Signer") {
		sig := body.CreateElement("Подписант")
		sig.CreateAttr("СпосПодтПолном", signer.SelectAttrValue("SignerPowersConfirmationMethod", ""))
		if storage := signer.FindElement("PowerOfAttorney/Electronic/Storage"); storage != nil {
			poa := sig.CreateElement("СвДоверЭл")
			setAttr(poa, "НомДовер", elementText(storage, "FullId/RegistrationNumber"))
			setAttr(poa, "ИННДоверит", elementText(storage, "FullId/IssuerInn"))
		}
	}

	doc.Indent(2)
	return doc
}

func addParty(parent, org *etree.Element) {
	id := parent.CreateElement("ИдСв")
	switch org.SelectAttrValue("OrgType", "") {
	case "1":
		ip := id.CreateElement("СвИП")
		ip.CreateAttr("ИННФЛ", org.SelectAttrValue("Inn", ""))
		ip.CreateAttr("ФИО", org.SelectAttrValue("OrgName", ""))
	default:
		le := id.CreateElement("СвЮЛУч")
		le.CreateAttr("НаимОрг", org.SelectAttrValue("OrgName", ""))
		le.CreateAttr("ИННЮЛ", org.SelectAttrValue("Inn", ""))
		setAttr(le, "КПП", org.SelectAttrValue("Kpp", ""))
	}
	if region := org.FindElement("Address/RussianAddress"); region != nil {
		parent.CreateElement("Адрес").CreateElement("АдрРФ").
			CreateAttr("КодРегион", region.SelectAttrValue("Region", ""))
	}
}

// describeTitle reads the number and date back from a generated title. For
// content the sandbox did not produce, it falls back to a generic title.
func describeTitle(att models.DocumentAttachment) titleInfo {
	info := titleInfo{DocumentInfo: models.DocumentInfo{
		Title:       "Документ",
		TypeNamedId: att.TypeNamedId,
		Function:    att.Function,
		Version:     att.Version,
	}}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(att.SignedContent.Content); err != nil {
		return info
	}
	root := doc.Root()
	if root == nil || root.Tag != titleRoot {
		return info
	}

	info.fileName = root.SelectAttrValue("ИдФайл", "") + ".xml"
	if body := root.SelectElement("Документ"); body != nil {
		if invoice := body.SelectElement("СвСчФакт"); invoice != nil {
			info.DocumentNumber = invoice.SelectAttrValue("НомерДок", "")
			info.DocumentDate = invoice.SelectAttrValue("ДатаДок", "")
			info.Title = fmt.Sprintf("УПД №%s от %s", info.DocumentNumber, info.DocumentDate)
		}
	}
	return info
}

type titleInfo struct {
	models.DocumentInfo
	fileName string
}

func setAttr(el *etree.Element, key, value string) {
	if value != "" {
		el.CreateAttr(key, value)
	}
}

func elementText(el *etree.Element, path string) string {
	if child := el.FindElement(path); child != nil {
		return child.Text()
	}
	return ""
}

// compactDate turns dd.mm.yyyy into yyyymmdd.
func compactDate(date string) string {
	parts := strings.Split(date, ".")
	if len(parts) != 3 {
		return strings.ReplaceAll(date, ".", "")
	}
	return parts[2] + parts[1] + parts[0]
}
