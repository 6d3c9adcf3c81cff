package utd970

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-diadoc/models"
)

func TestPowerOfAttorneyMode_Mapping(t *testing.T) {
	file := PowerOfAttorneyAsFile{Content: []byte("poa"), Signature: []byte("sig")}
	inContent := PowerOfAttorneyInContent{IssuerInn: "7750370238", RegistrationNumber: "reg-1"}

	filePayload := &models.PowerOfAttorneyToPost{
		Contents: []models.PowerOfAttorneySignedContent{{
			Content:   models.Content{Content: []byte("poa")},
			Signature: models.Content{Content: []byte("sig")},
		}},
	}
	embeddedPayload := &models.PowerOfAttorneyToPost{UseDocumentContent: true}
	signerRecord := &PowerOfAttorney{Electronic: &ElectronicPowerOfAttorney{Storage: &StorageFullId{
		IssuerInn:          "7750370238",
		RegistrationNumber: "reg-1",
	}}}

	tests := []struct {
		name       string
		mode       PowerOfAttorneyMode
		wantKind   PowerOfAttorneyKind
		wantMethod SignerPowersConfirmationMethod
		wantPost   *models.PowerOfAttorneyToPost
		wantSigner *PowerOfAttorney
	}{
		{name: "none", mode: NoPowerOfAttorney{}, wantKind: KindNone, wantMethod: 6},
		{name: "nil", mode: nil, wantKind: KindNone, wantMethod: 6},
		{name: "nil pointer", mode: (*PowerOfAttorneyAsFile)(nil), wantKind: KindNone, wantMethod: 6},
		{name: "file as meta", mode: file, wantKind: KindFileAsMeta, wantMethod: 4, wantPost: filePayload},
		{name: "file as meta pointer", mode: &file, wantKind: KindFileAsMeta, wantMethod: 4, wantPost: filePayload},
		{
			name:       "in document content",
			mode:       inContent,
			wantKind:   KindInContent,
			wantMethod: 3,
			wantPost:   embeddedPayload,
			wantSigner: signerRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, KindOf(tt.mode))
			assert.Equal(t, tt.wantMethod, ConfirmationMethodFor(tt.mode))
			assert.Equal(t, tt.wantPost, PowerOfAttorneyToPostFor(tt.mode))
			assert.Equal(t, tt.wantSigner, SignerPowerOfAttorneyFor(tt.mode))

			post := PowerOfAttorneyToPostFor(tt.mode)
			if post == nil {
				return
			}
			// exactly one payload form
			assert.NotEqual(t, post.UseDocumentContent, len(post.Contents) > 0)
			assert.False(t, post.UseDefault)
			assert.Nil(t, post.FullId)
		})
	}
}

func TestPowerOfAttorneyToPostFor_CopiesPayload(t *testing.T) {
	mode := PowerOfAttorneyAsFile{Content: []byte("poa"), Signature: []byte("sig")}

	post := PowerOfAttorneyToPostFor(mode)
	require.NotNil(t, post)
	mode.Content[0] = 'x'

	assert.Equal(t, []byte("poa"), post.Contents[0].Content.Content)
}

func TestParsePowerOfAttorneyKind(t *testing.T) {
	for _, s := range []string{"none", "file-as-meta", "in-content"} {
		kind, err := ParsePowerOfAttorneyKind(s)
		require.NoError(t, err)
		assert.Equal(t, PowerOfAttorneyKind(s), kind)
	}

	_, err := ParsePowerOfAttorneyKind("In-Content")
	assert.ErrorIs(t, err, ErrUnknownPowerOfAttorneyKind)
}
