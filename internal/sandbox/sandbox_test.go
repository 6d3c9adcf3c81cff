package sandbox

import (
	"fmt"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/samples"
	"github.com/MKhiriev/go-diadoc/models"
	"github.com/MKhiriev/go-diadoc/utd970"
)

func newTestSandbox(accounts map[string]string) *Sandbox {
	s := New(Options{ClientID: "client", Accounts: accounts}, logger.Nop())
	n := 0
	s.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return s
}

var utdType = models.DocumentType{
	TypeNamedId: utd970.TypeNamedId,
	Function:    string(utd970.FunctionInvoice),
	Version:     utd970.Version,
}

func sampleContract(t *testing.T, mode utd970.PowerOfAttorneyMode) []byte {
	t.Helper()
	doc, err := samples.BuildUserDataContract("from-box", []byte{1, 2, 3}, mode)
	require.NoError(t, err)
	data, err := utd970.Serialize(doc)
	require.NoError(t, err)
	return data
}

func TestAuthenticate(t *testing.T) {
	s := newTestSandbox(map[string]string{"user": "secret"})

	token, err := s.Authenticate("user", "secret")
	require.NoError(t, err)
	assert.Equal(t, "id-1", token)

	login, err := s.CheckToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user", login)

	_, err = s.Authenticate("user", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.CheckToken("nope")
	assert.ErrorIs(t, err, ErrUnknownToken)
}

func TestAuthenticate_OpenSandbox(t *testing.T) {
	s := newTestSandbox(nil)

	_, err := s.Authenticate("anyone", "anything")
	assert.NoError(t, err)

	_, err = s.Authenticate("anyone", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGenerateTitle(t *testing.T) {
	s := newTestSandbox(nil)
	mode := utd970.PowerOfAttorneyInContent{IssuerInn: samples.SellerInn, RegistrationNumber: "reg-1"}

	file, err := s.GenerateTitle("from-box", utdType, 0, sampleContract(t, mode))
	require.NoError(t, err)
	assert.Equal(t, "ON_NSCHFDOPPR_from-box_20200101_id-1.xml", file.FileName)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(file.Content))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Файл", root.Tag)
	assert.Equal(t, "ON_NSCHFDOPPR_from-box_20200101_id-1", root.SelectAttrValue("ИдФайл", ""))

	body := root.SelectElement("Документ")
	require.NotNil(t, body)
	assert.Equal(t, "СЧФ", body.SelectAttrValue("Функция", ""))

	invoice := body.SelectElement("СвСчФакт")
	require.NotNil(t, invoice)
	assert.Equal(t, "134", invoice.SelectAttrValue("НомерДок", ""))
	assert.Equal(t, "01.01.2020", invoice.SelectAttrValue("ДатаДок", ""))

	content := string(file.Content)
	for _, want := range []string{
		`НаимОрг="ЗАО Очень Древний Папирус"`,
		`ИННЮЛ="9500000005"`,
		`КодРегион="66"`,
		`КодОКВ="643"`,
		`НаимТов="товар"`,
		`НалСт="10%"`,
		`СтТовУчНал="110"`,
		`СодОпер="Operation Info"`,
		`РеквНаимДок="Документ об отгрузке"`,
		`СпосПодтПолном="3"`,
		`НомДовер="reg-1"`,
	} {
		assert.Contains(t, content, want)
	}
}

func TestGenerateTitle_Rejects(t *testing.T) {
	s := newTestSandbox(nil)
	contract := sampleContract(t, nil)

	tests := []struct {
		name       string
		docType    models.DocumentType
		titleIndex int
		contract   []byte
		wantErr    error
		wantMsg    string
	}{
		{
			name:     "other document type",
			docType:  models.DocumentType{TypeNamedId: "Invoice", Function: "default", Version: "v1"},
			contract: contract,
			wantErr:  ErrUnsupportedDocument,
		},
		{
			name:       "buyer title",
			docType:    utdType,
			titleIndex: 1,
			contract:   contract,
			wantErr:    ErrUnsupportedDocument,
		},
		{
			name:     "not xml",
			docType:  utdType,
			contract: []byte("{}"),
			wantErr:  ErrInvalidContract,
		},
		{
			name:     "wrong root",
			docType:  utdType,
			contract: []byte(`<Invoice/>`),
			wantErr:  ErrInvalidContract,
		},
		{
			name:     "empty contract",
			docType:  utdType,
			contract: []byte(`<UniversalTransferDocument Function="СЧФ"/>`),
			wantErr:  ErrInvalidContract,
			wantMsg:  "missing @DocumentNumber, @DocumentDate, @Currency, Sellers/Seller, Buyers/Buyer, Table/Item, Signers/Signer",
		},
		{
			name: "function mismatch",
			docType: models.DocumentType{
				TypeNamedId: utd970.TypeNamedId,
				Function:    string(utd970.FunctionBasic),
				Version:     utd970.Version,
			},
			contract: contract,
			wantErr:  ErrInvalidContract,
			wantMsg:  "does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GenerateTitle("box", tt.docType, tt.titleIndex, tt.contract)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func titleAttachment(t *testing.T, s *Sandbox, poa *models.PowerOfAttorneyToPost) models.DocumentAttachment {
	t.Helper()
	file, err := s.GenerateTitle("from-box", utdType, 0, sampleContract(t, nil))
	require.NoError(t, err)

	return models.DocumentAttachment{
		TypeNamedId: utdType.TypeNamedId,
		Function:    utdType.Function,
		Version:     utdType.Version,
		SignedContent: models.SignedContent{
			Content:         file.Content,
			Signature:       []byte("signature"),
			PowerOfAttorney: poa,
		},
	}
}

func TestPostMessage(t *testing.T) {
	s := newTestSandbox(nil)
	att := titleAttachment(t, s, nil)

	msg := models.MessageToPost{FromBoxId: "from-box", ToBoxId: "to-box"}
	msg.AddDocumentAttachment(att)

	posted, err := s.PostMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, "id-2", posted.MessageId)
	require.Len(t, posted.Entities, 2)

	doc, ok := posted.DocumentEntity()
	require.True(t, ok)
	assert.Equal(t, "id-3", doc.EntityId)
	assert.True(t, strings.HasPrefix(doc.FileName, "ON_NSCHFDOPPR_from-box_20200101_"))
	require.NotNil(t, doc.DocumentInfo)
	assert.Equal(t, "УПД №134 от 01.01.2020", doc.DocumentInfo.Title)
	assert.Equal(t, utd970.Version, doc.DocumentInfo.Version)

	signatures := posted.SignatureEntities()
	require.Len(t, signatures, 1)
	assert.Equal(t, doc.EntityId, signatures[0].ParentEntityId)

	stored, ok := s.Message(posted.MessageId)
	require.True(t, ok)
	assert.Equal(t, posted, stored)
}

func TestPostMessage_ForeignContent(t *testing.T) {
	s := newTestSandbox(nil)
	msg := models.MessageToPost{FromBoxId: "a", ToBoxId: "b"}
	msg.AddDocumentAttachment(models.DocumentAttachment{
		TypeNamedId:   "Nonformalized",
		SignedContent: models.SignedContent{Content: []byte("%PDF-1.4"), Signature: []byte("s")},
	})

	posted, err := s.PostMessage(msg)
	require.NoError(t, err)
	doc, ok := posted.DocumentEntity()
	require.True(t, ok)
	assert.Equal(t, "Документ", doc.DocumentInfo.Title)
}

func TestPostMessage_Rejects(t *testing.T) {
	s := newTestSandbox(nil)
	file := &models.PowerOfAttorneyToPost{Contents: []models.PowerOfAttorneySignedContent{{
		Content:   models.Content{Content: []byte("poa")},
		Signature: models.Content{Content: []byte("sig")},
	}}}

	tests := []struct {
		name    string
		mutate  func(msg *models.MessageToPost)
		wantErr error
	}{
		{
			name:    "no recipient",
			mutate:  func(msg *models.MessageToPost) { msg.ToBoxId = "" },
			wantErr: ErrInvalidMessage,
		},
		{
			name:    "no attachments",
			mutate:  func(msg *models.MessageToPost) { msg.DocumentAttachments = nil },
			wantErr: ErrInvalidMessage,
		},
		{
			name:    "unsigned",
			mutate:  func(msg *models.MessageToPost) { msg.DocumentAttachments[0].SignedContent.Signature = nil },
			wantErr: ErrInvalidMessage,
		},
		{
			name: "two power of attorney forms",
			mutate: func(msg *models.MessageToPost) {
				poa := *file
				poa.UseDocumentContent = true
				msg.DocumentAttachments[0].SignedContent.PowerOfAttorney = &poa
			},
			wantErr: ErrInvalidPowerOfAttorney,
		},
		{
			name: "empty power of attorney",
			mutate: func(msg *models.MessageToPost) {
				msg.DocumentAttachments[0].SignedContent.PowerOfAttorney = &models.PowerOfAttorneyToPost{}
			},
			wantErr: ErrInvalidPowerOfAttorney,
		},
		{
			name: "power of attorney file without signature",
			mutate: func(msg *models.MessageToPost) {
				msg.DocumentAttachments[0].SignedContent.PowerOfAttorney = &models.PowerOfAttorneyToPost{
					Contents: []models.PowerOfAttorneySignedContent{{Content: models.Content{Content: []byte("poa")}}},
				}
			},
			wantErr: ErrInvalidPowerOfAttorney,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := models.MessageToPost{FromBoxId: "from-box", ToBoxId: "to-box"}
			msg.AddDocumentAttachment(titleAttachment(t, s, file))
			tt.mutate(&msg)

			_, err := s.PostMessage(msg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
