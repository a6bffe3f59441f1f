// Package yaml marshals codex payloads as YAML mappings.
//
// Floats are written as a sequence under the "floats" key; "algorithm" and
// "digest" appear only when the payload carries a digest.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/codex"
)

// yamlCodec implements codex.Codec over gopkg.in/yaml.v3.
type yamlCodec struct{}

// New returns the YAML payload codec (application/yaml).
func New() codex.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v, normally a *codex.Payload, as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v, normally a *codex.Payload.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
