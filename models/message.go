// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire-level data structures exchanged with the
// Diadoc HTTP API. Field names follow the service's JSON representation
// (PascalCase), byte slices travel as base64 strings.
package models

// MessageToPost is a set of documents sent from one box to another in a
// single submission.
type MessageToPost struct {
	// FromBoxId is the sender mailbox.
	FromBoxId string `json:"FromBoxId"`
	// ToBoxId is the recipient mailbox.
	ToBoxId string `json:"ToBoxId"`
	// DocumentAttachments lists the documents in the message.
	DocumentAttachments []DocumentAttachment `json:"DocumentAttachments"`
}

// AddDocumentAttachment appends a document to the message.
func (m *MessageToPost) AddDocumentAttachment(attachment DocumentAttachment) {
	m.DocumentAttachments = append(m.DocumentAttachments, attachment)
}

// DocumentAttachment is a single document of a [MessageToPost]. The
// TypeNamedId/Function/Version triple selects the document schema variant.
type DocumentAttachment struct {
	TypeNamedId      string        `json:"TypeNamedId"`
	Function         string        `json:"Function,omitempty"`
	Version          string        `json:"Version,omitempty"`
	SignedContent    SignedContent `json:"SignedContent"`
	Comment          string        `json:"Comment,omitempty"`
	CustomDocumentId string        `json:"CustomDocumentId,omitempty"`
}

// DocumentType returns the schema triple of the attachment.
func (a DocumentAttachment) DocumentType() DocumentType {
	return DocumentType{TypeNamedId: a.TypeNamedId, Function: a.Function, Version: a.Version}
}

// SignedContent carries document bytes together with a detached signature and
// an optional power-of-attorney reference.
type SignedContent struct {
	Content         []byte                 `json:"Content"`
	Signature       []byte                 `json:"Signature"`
	PowerOfAttorney *PowerOfAttorneyToPost `json:"PowerOfAttorney,omitempty"`
}

// DocumentType identifies a formalized document schema in Diadoc.
type DocumentType struct {
	TypeNamedId string `json:"TypeNamedId"`
	Function    string `json:"Function"`
	Version     string `json:"Version"`
}

// String renders the triple as "type/function/version".
func (t DocumentType) String() string {
	return t.TypeNamedId + "/" + t.Function + "/" + t.Version
}
