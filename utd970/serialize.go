package utd970

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Serialize renders the document as UTF-8 XML with a declaration. The output
// depends only on the document value.
func Serialize(doc UniversalTransferDocument) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("serialize universal transfer document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("serialize universal transfer document: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads a user contract produced by Serialize.
func Parse(data []byte) (UniversalTransferDocument, error) {
	var doc UniversalTransferDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return UniversalTransferDocument{}, fmt.Errorf("parse universal transfer document: %w", err)
	}
	return doc, nil
}
