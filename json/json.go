// Package json marshals codex payloads as JSON objects.
//
// A payload is written as {"floats":[...]} with "algorithm" and "digest"
// members added only when the payload carries a digest. Floats survive the
// round trip exactly because encoding/json prints the shortest form that
// parses back to the same float64.
package json

import (
	"encoding/json"

	"github.com/zoobzio/codex"
)

// jsonCodec implements codex.Codec over encoding/json.
type jsonCodec struct{}

// New returns the JSON payload codec (application/json).
func New() codex.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v, normally a *codex.Payload, as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v, normally a *codex.Payload.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
