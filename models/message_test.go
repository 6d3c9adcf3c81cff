package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_DocumentEntity(t *testing.T) {
	tests := []struct {
		name       string
		entities   []Entity
		wantID     string
		wantFound  bool
		signatures int
	}{
		{
			name: "document before signature",
			entities: []Entity{
				{EntityId: "doc", DocumentInfo: &DocumentInfo{Title: "УПД №134"}},
				{EntityId: "sig", ParentEntityId: "doc"},
			},
			wantID:     "doc",
			wantFound:  true,
			signatures: 1,
		},
		{
			name: "signature listed first",
			entities: []Entity{
				{EntityId: "sig", ParentEntityId: "doc"},
				{EntityId: "doc"},
			},
			wantID:     "doc",
			wantFound:  true,
			signatures: 1,
		},
		{
			name:      "no entities",
			wantFound: false,
		},
		{
			name: "only signatures",
			entities: []Entity{
				{EntityId: "sig1", ParentEntityId: "doc"},
				{EntityId: "sig2", ParentEntityId: "doc"},
			},
			wantFound:  false,
			signatures: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Message{MessageId: "m", Entities: tt.entities}

			got, ok := msg.DocumentEntity()
			require.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantID, got.EntityId)
			assert.Len(t, msg.SignatureEntities(), tt.signatures)
		})
	}
}

func TestMessageToPost_AddDocumentAttachment(t *testing.T) {
	msg := MessageToPost{FromBoxId: "from", ToBoxId: "to"}
	msg.AddDocumentAttachment(DocumentAttachment{TypeNamedId: "UniversalTransferDocument", Function: "СЧФ", Version: "utd970_05_03_01"})

	require.Len(t, msg.DocumentAttachments, 1)
	assert.Equal(t, "UniversalTransferDocument/СЧФ/utd970_05_03_01", msg.DocumentAttachments[0].DocumentType().String())
}
