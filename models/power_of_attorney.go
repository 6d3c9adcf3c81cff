package models

// PowerOfAttorneyToPost tells the service which power of attorney confirms the
// signer's authority. Exactly one way of referencing it is expected to be set:
// the default one registered for the employee, one embedded in the document
// content, an explicit registry id, or attached file contents.
type PowerOfAttorneyToPost struct {
	UseDefault         bool                           `json:"UseDefault,omitempty"`
	UseDocumentContent bool                           `json:"UseDocumentContent,omitempty"`
	FullId             *PowerOfAttorneyFullId         `json:"FullId,omitempty"`
	Contents           []PowerOfAttorneySignedContent `json:"Contents,omitempty"`
}

// PowerOfAttorneyFullId is the registry identifier of a machine-readable
// power of attorney.
type PowerOfAttorneyFullId struct {
	RegistrationNumber string `json:"RegistrationNumber"`
	IssuerInn          string `json:"IssuerInn"`
}

// PowerOfAttorneySignedContent is a power-of-attorney file with its signature.
type PowerOfAttorneySignedContent struct {
	Content   Content `json:"Content"`
	Signature Content `json:"Signature"`
}

// Content wraps raw bytes.
type Content struct {
	Content []byte `json:"Content"`
}
