package models

// TitleRequest asks the service to turn a simplified user contract into a
// full document title.
type TitleRequest struct {
	// BoxId is the box the title is generated for.
	BoxId string
	// DocumentType selects the schema.
	DocumentType DocumentType
	// TitleIndex is the ordinal of the title; 0 is the sender's title.
	TitleIndex int
	// UserContractData is the serialized user contract XML.
	UserContractData []byte
}

// GeneratedFile is a file produced by the service.
type GeneratedFile struct {
	FileName string
	Content  []byte
}
