// Package msgpack marshals codex payloads as MessagePack maps.
//
// Each float is stored as a float64 so chunk values keep every bit of their
// 42-bit fraction.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/zoobzio/codex"
)

// msgpackCodec implements codex.Codec over vmihailenco/msgpack.
type msgpackCodec struct{}

// New returns the MessagePack payload codec (application/msgpack).
func New() codex.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v, normally a *codex.Payload, as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v, normally a *codex.Payload.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
