package models

// Message is the server view of a posted message.
type Message struct {
	MessageId string   `json:"MessageId"`
	FromBoxId string   `json:"FromBoxId"`
	ToBoxId   string   `json:"ToBoxId"`
	Entities  []Entity `json:"Entities"`
}

// Entity is an item stored inside a message: a document, a signature, a
// receipt. Signatures reference the document they belong to through
// ParentEntityId.
type Entity struct {
	EntityType     string        `json:"EntityType,omitempty"`
	EntityId       string        `json:"EntityId"`
	ParentEntityId string        `json:"ParentEntityId,omitempty"`
	FileName       string        `json:"FileName,omitempty"`
	DocumentInfo   *DocumentInfo `json:"DocumentInfo,omitempty"`
}

// IsDocument reports whether the entity has no parent, which is how documents
// are told apart from the signatures attached to them.
func (e Entity) IsDocument() bool {
	return e.ParentEntityId == ""
}

// DocumentInfo describes a document entity.
type DocumentInfo struct {
	Title          string `json:"Title"`
	TypeNamedId    string `json:"TypeNamedId,omitempty"`
	Function       string `json:"Function,omitempty"`
	Version        string `json:"Version,omitempty"`
	DocumentNumber string `json:"DocumentNumber,omitempty"`
	DocumentDate   string `json:"DocumentDate,omitempty"`
}

// DocumentEntity returns the first entity without a parent.
func (m Message) DocumentEntity() (Entity, bool) {
	for _, e := range m.Entities {
		if e.IsDocument() {
			return e, true
		}
	}
	return Entity{}, false
}

// SignatureEntities returns every entity that references a parent entity.
func (m Message) SignatureEntities() []Entity {
	var signatures []Entity
	for _, e := range m.Entities {
		if !e.IsDocument() {
			signatures = append(signatures, e)
		}
	}
	return signatures
}
