// Package codex maps text to and from sequences of floats in [0, 1).
//
// Text is lower-cased and split into chunks of MaxCharsPerFloat symbols.
// Each chunk is right-padded with Pad, read as a base-Base number whose
// digits are positions in Alphabet, and divided by 2^Exponent. Decoding
// reverses each chunk, joins them and strips trailing Pad symbols.
//
// # Core
//
//	floats, err := codex.EncodeString("hello world") // two floats
//	text, err := codex.DecodeFloats(floats)          // "hello world"
//
// EncodeChunk and DecodeChunk expose the single-chunk mapping; the N variants
// take an explicit width between 1 and MaxCharsPerFloat.
//
// Text that ends in Pad loses those trailing symbols on a round trip.
//
// # Processor
//
// A Processor carries encoded text across a byte boundary. It wraps the
// floats in a Payload, optionally attaches a digest, marshals the payload
// with a Codec and optionally encrypts the result:
//
//	enc, _ := codex.AES(key)
//	proc, _ := codex.NewProcessor(json.New(),
//	    codex.WithDigest(codex.HashBLAKE2b),
//	    codex.WithEncryptor(enc),
//	)
//
//	data, _ := proc.Encode(ctx, "meet at dawn.")
//	text, _ := proc.Decode(ctx, data)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Digest Algorithms
//
//   - sha256 - SHA256Hasher()
//   - sha512 - SHA512Hasher()
//   - blake2b - BLAKE2bHasher()
//   - sha3 - SHA3Hasher()
//
// # Encryption
//
//   - AES(key) - AES-GCM symmetric encryption
//   - Envelope(masterKey) - Envelope encryption with per-payload data keys
package codex

import "encoding/xml"

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Payload is the wire form of an encoded message.
type Payload struct {
	XMLName xml.Name `json:"-" yaml:"-" msgpack:"-" bson:"-" xml:"payload"`

	// Floats holds one value per chunk, in text order.
	Floats []float64 `json:"floats" xml:"float" yaml:"floats" msgpack:"floats" bson:"floats"`

	// Algorithm names the digest algorithm. Empty when no digest is attached.
	Algorithm string `json:"algorithm,omitempty" xml:"algorithm,attr,omitempty" yaml:"algorithm,omitempty" msgpack:"algorithm,omitempty" bson:"algorithm,omitempty"`

	// Digest is the hex digest of the floats' big-endian IEEE-754 bits.
	Digest string `json:"digest,omitempty" xml:"digest,omitempty" yaml:"digest,omitempty" msgpack:"digest,omitempty" bson:"digest,omitempty"`
}
