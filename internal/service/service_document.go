// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/crypto"
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/samples"
	"github.com/MKhiriev/go-diadoc/internal/store"
	"github.com/MKhiriev/go-diadoc/models"
	"github.com/MKhiriev/go-diadoc/utd970"
)

// SendRequest is the input of [DocumentService.SendUniversalTransferDocument].
type SendRequest struct {
	// Token is the result of Authenticate.
	Token     string
	FromBoxID string
	ToBoxID   string
	// Certificate is the DER certificate of the signer. It goes into the
	// user contract and is handed to the signer.
	Certificate     []byte
	PowerOfAttorney utd970.PowerOfAttorneyMode
	// CustomDocumentID defaults to a freshly generated id.
	CustomDocumentID string
	Comment          string
}

// SendResult describes a posted document.
type SendResult struct {
	Message    models.Message
	Document   models.Entity
	Submission models.Submission
}

type documentService struct {
	client  api.Client
	signer  crypto.Signer
	journal store.Journal
	ids     IDGenerator

	verify func(content, signature, certificate []byte) error
	now    func() time.Time

	logger *logger.Logger
}

// DocumentOption customizes a DocumentService.
type DocumentOption func(*documentService)

// WithJournal records every posted document in j.
func WithJournal(j store.Journal) DocumentOption {
	return func(s *documentService) { s.journal = j }
}

// WithLocalVerification checks each signature with [crypto.Verify] before
// the message is posted.
func WithLocalVerification() DocumentOption {
	return func(s *documentService) { s.verify = crypto.Verify }
}

func NewDocumentService(client api.Client, signer crypto.Signer, ids IDGenerator, logger *logger.Logger, opts ...DocumentOption) DocumentService {
	s := &documentService{
		client: client,
		signer: signer,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentService) SendUniversalTransferDocument(ctx context.Context, req SendRequest) (SendResult, error) {
	log := s.logger.With().
		Str("from_box", req.FromBoxID).
		Str("to_box", req.ToBoxID).
		Str("power_of_attorney", string(utd970.KindOf(req.PowerOfAttorney))).
		Logger()

	if req.FromBoxID == "" || req.ToBoxID == "" {
		return SendResult{}, stepError(StepBuild, ErrMissingBoxes)
	}
	if len(req.Certificate) == 0 {
		return SendResult{}, stepError(StepBuild, ErrMissingCertificate)
	}

	doc, err := samples.BuildUserDataContract(req.FromBoxID, req.Certificate, req.PowerOfAttorney)
	if err != nil {
		return SendResult{}, stepError(StepBuild, err)
	}

	contract, err := utd970.Serialize(doc)
	if err != nil {
		return SendResult{}, stepError(StepSerialize, err)
	}
	log.Debug().Int("bytes", len(contract)).Msg("user contract serialized")

	docType := models.DocumentType{
		TypeNamedId: utd970.TypeNamedId,
		Function:    string(utd970.FunctionInvoice),
		Version:     utd970.Version,
	}
	title, err := s.client.GenerateTitleXml(ctx, req.Token, models.TitleRequest{
		BoxId:            req.FromBoxID,
		DocumentType:     docType,
		TitleIndex:       0,
		UserContractData: contract,
	})
	if err != nil {
		return SendResult{}, stepError(StepTitle, err)
	}
	log.Debug().Str("file_name", title.FileName).Int("bytes", len(title.Content)).Msg("title generated")

	signature, err := s.signer.Sign(ctx, title.Content, req.Certificate)
	if err != nil {
		return SendResult{}, stepError(StepSign, err)
	}
	if s.verify != nil {
		if err = s.verify(title.Content, signature, req.Certificate); err != nil {
			return SendResult{}, stepError(StepVerify, err)
		}
	}

	customID := req.CustomDocumentID
	if customID == "" {
		customID = s.ids.Generate()
	}

	msg := models.MessageToPost{FromBoxId: req.FromBoxID, ToBoxId: req.ToBoxID}
	msg.AddDocumentAttachment(models.DocumentAttachment{
		TypeNamedId: docType.TypeNamedId,
		Function:    docType.Function,
		Version:     docType.Version,
		SignedContent: models.SignedContent{
			Content:         title.Content,
			Signature:       signature,
			PowerOfAttorney: utd970.PowerOfAttorneyToPostFor(req.PowerOfAttorney),
		},
		Comment:          req.Comment,
		CustomDocumentId: customID,
	})

	posted, err := s.client.PostMessage(ctx, req.Token, msg)
	if err != nil {
		return SendResult{}, stepError(StepPost, err)
	}

	entity, ok := posted.DocumentEntity()
	if !ok {
		return SendResult{Message: posted}, stepError(StepEntity, ErrNoDocumentEntity)
	}

	result := SendResult{
		Message:  posted,
		Document: entity,
		Submission: models.Submission{
			MessageID:        posted.MessageId,
			EntityID:         entity.EntityId,
			Title:            documentTitle(entity, title),
			DocumentType:     docType,
			FromBoxID:        req.FromBoxID,
			ToBoxID:          req.ToBoxID,
			CustomDocumentID: customID,
			PowerOfAttorney:  string(utd970.KindOf(req.PowerOfAttorney)),
			CreatedAt:        s.now().UTC(),
		},
	}
	log.Info().
		Str("message_id", posted.MessageId).
		Str("entity_id", entity.EntityId).
		Str("custom_document_id", customID).
		Msg("document posted")

	if s.journal != nil {
		if err = s.journal.Save(ctx, result.Submission); err != nil {
			// the message is already in Diadoc, so the caller still gets it
			return result, stepError(StepRecord, err)
		}
	}
	return result, nil
}

func documentTitle(entity models.Entity, file models.GeneratedFile) string {
	if entity.DocumentInfo != nil && entity.DocumentInfo.Title != "" {
		return entity.DocumentInfo.Title
	}
	if entity.FileName != "" {
		return entity.FileName
	}
	return file.FileName
}
