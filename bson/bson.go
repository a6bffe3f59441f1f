// Package bson marshals codex payloads as BSON documents.
//
// Floats become a BSON array of doubles under "floats". BSON requires a
// document at the top level, so only *codex.Payload values (not bare float
// slices) can be marshaled.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/codex"
)

// bsonCodec implements codex.Codec over the mongo-driver bson package.
type bsonCodec struct{}

// New returns the BSON payload codec (application/bson).
func New() codex.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v, normally a *codex.Payload, as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v, normally a *codex.Payload.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
