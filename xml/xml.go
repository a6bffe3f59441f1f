// Package xml marshals codex payloads as XML documents.
//
// A payload is written as a <payload> element holding one <float> child per
// chunk. The digest algorithm is an attribute of <payload> and the digest a
// child element; both are omitted when the payload carries no digest.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/codex"
)

// xmlCodec implements codex.Codec over encoding/xml.
type xmlCodec struct{}

// New returns an XML payload codec (application/xml).
func New() codex.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v, normally a *codex.Payload, as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v, normally a *codex.Payload.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
