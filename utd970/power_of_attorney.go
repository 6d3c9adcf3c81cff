package utd970

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-diadoc/models"
)

// PowerOfAttorneyMode selects how the signer's machine-readable power of
// attorney reaches the recipient. The set of variants is closed:
// NoPowerOfAttorney, PowerOfAttorneyAsFile and PowerOfAttorneyInContent.
type PowerOfAttorneyMode interface {
	Kind() PowerOfAttorneyKind
	powerOfAttorneyMode()
}

// NoPowerOfAttorney means the signer acts without a power of attorney.
type NoPowerOfAttorney struct{}

// PowerOfAttorneyAsFile attaches the power-of-attorney file and its signature
// to the message metadata.
type PowerOfAttorneyAsFile struct {
	Content   []byte
	Signature []byte
}

// PowerOfAttorneyInContent references a registered power of attorney from
// inside the document itself.
type PowerOfAttorneyInContent struct {
	IssuerInn          string
	RegistrationNumber string
}

func (NoPowerOfAttorney) Kind() PowerOfAttorneyKind        { return KindNone }
func (PowerOfAttorneyAsFile) Kind() PowerOfAttorneyKind    { return KindFileAsMeta }
func (PowerOfAttorneyInContent) Kind() PowerOfAttorneyKind { return KindInContent }

func (NoPowerOfAttorney) powerOfAttorneyMode()        {}
func (PowerOfAttorneyAsFile) powerOfAttorneyMode()    {}
func (PowerOfAttorneyInContent) powerOfAttorneyMode() {}

// PowerOfAttorneyKind names a mode without its payload.
type PowerOfAttorneyKind string

const (
	KindNone       PowerOfAttorneyKind = "none"
	KindFileAsMeta PowerOfAttorneyKind = "file-as-meta"
	KindInContent  PowerOfAttorneyKind = "in-content"
)

var ErrUnknownPowerOfAttorneyKind = errors.New("unknown power of attorney kind")

func ParsePowerOfAttorneyKind(s string) (PowerOfAttorneyKind, error) {
	switch k := PowerOfAttorneyKind(s); k {
	case KindNone, KindFileAsMeta, KindInContent:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPowerOfAttorneyKind, s)
}

// KindOf returns the kind of mode, treating nil as KindNone.
func KindOf(mode PowerOfAttorneyMode) PowerOfAttorneyKind {
	if mode = normalize(mode); mode == nil {
		return KindNone
	}
	return mode.Kind()
}

// normalize dereferences pointer variants. Nil pointers become nil.
func normalize(mode PowerOfAttorneyMode) PowerOfAttorneyMode {
	switch m := mode.(type) {
	case *NoPowerOfAttorney:
		if m == nil {
			return nil
		}
		return *m
	case *PowerOfAttorneyAsFile:
		if m == nil {
			return nil
		}
		return *m
	case *PowerOfAttorneyInContent:
		if m == nil {
			return nil
		}
		return *m
	}
	return mode
}

// ConfirmationMethodFor returns the signer powers confirmation code written
// into the document for the given mode.
func ConfirmationMethodFor(mode PowerOfAttorneyMode) SignerPowersConfirmationMethod {
	switch normalize(mode).(type) {
	case PowerOfAttorneyAsFile:
		return ConfirmationByAttachedPowerOfAttorney
	case PowerOfAttorneyInContent:
		return ConfirmationInDocumentContent
	default:
		return ConfirmationOther
	}
}

// PowerOfAttorneyToPostFor returns the power-of-attorney part of the signed
// content sent with the message. It is nil unless the mode needs one.
func PowerOfAttorneyToPostFor(mode PowerOfAttorneyMode) *models.PowerOfAttorneyToPost {
	switch m := normalize(mode).(type) {
	case PowerOfAttorneyAsFile:
		return &models.PowerOfAttorneyToPost{
			Contents: []models.PowerOfAttorneySignedContent{{
				Content:   models.Content{Content: slices.Clone(m.Content)},
				Signature: models.Content{Content: slices.Clone(m.Signature)},
			}},
		}
	case PowerOfAttorneyInContent:
		return &models.PowerOfAttorneyToPost{UseDocumentContent: true}
	default:
		return nil
	}
}

// SignerPowerOfAttorneyFor returns the power-of-attorney record embedded in
// the signer element. Only PowerOfAttorneyInContent produces one.
func SignerPowerOfAttorneyFor(mode PowerOfAttorneyMode) *PowerOfAttorney {
	m, ok := normalize(mode).(PowerOfAttorneyInContent)
	if !ok {
		return nil
	}
	return &PowerOfAttorney{
		Electronic: &ElectronicPowerOfAttorney{
			Storage: &StorageFullId{
				UseDefault:         false,
				IssuerInn:          m.IssuerInn,
				RegistrationNumber: m.RegistrationNumber,
			},
		},
	}
}
