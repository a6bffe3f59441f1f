package codex

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Processor encodes messages into marshaled payloads and back.
// Use Encode for egress and Decode for ingress.
//
// Processors are safe for concurrent use. SetEncryptor and SetHasher may be
// called at any time to rotate keys or replace hashers.
type Processor struct {
	codec Codec

	// Mutable configuration protected by mu
	mu        sync.RWMutex
	hashers   map[HashAlgo]Hasher
	encryptor Encryptor

	// Digest algorithm attached on encode and required on decode (immutable)
	digest HashAlgo
}

// ProcessorOption configures a Processor at construction.
type ProcessorOption func(*Processor)

// WithDigest attaches a digest of the given algorithm to every payload and
// requires a digest of the same algorithm on every decoded payload.
func WithDigest(algo HashAlgo) ProcessorOption {
	return func(p *Processor) {
		p.digest = algo
	}
}

// WithEncryptor seals every marshaled payload with enc.
func WithEncryptor(enc Encryptor) ProcessorOption {
	return func(p *Processor) {
		p.encryptor = enc
	}
}

// NewProcessor creates a Processor that marshals payloads with codec.
//
// The processor is created with the builtin hashers. An unknown digest
// algorithm is rejected with ErrInvalidAlgorithm.
func NewProcessor(codec Codec, opts ...ProcessorOption) (*Processor, error) {
	p := &Processor{
		codec:   codec,
		hashers: builtinHashers(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.digest != "" && !IsValidHashAlgo(p.digest) {
		return nil, newConfigError(ErrInvalidAlgorithm, string(p.digest))
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), p.digest)
	return p, nil
}

// ContentType returns the content type of the processor's codec.
func (p *Processor) ContentType() string {
	return p.codec.ContentType()
}

// SetEncryptor registers the encryptor used to seal and open payloads.
// A nil encryptor disables encryption.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor) SetEncryptor(enc Encryptor) *Processor {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptor = enc
	return p
}

// SetHasher registers a hasher for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor) SetHasher(algo HashAlgo, h Hasher) *Processor {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hashers[algo] = h
	return p
}

// Pack encodes message into a Payload, attaching a digest when configured.
func (p *Processor) Pack(message string) (*Payload, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pack(message)
}

// Unpack verifies the payload digest and decodes its floats.
// A processor created WithDigest only accepts payloads digested with its
// own algorithm; otherwise any registered algorithm is verified.
func (p *Processor) Unpack(payload *Payload) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.unpack(payload)
}

// Encode packs message, marshals the payload and seals it when an
// encryptor is registered.
func (p *Processor) Encode(ctx context.Context, message string) ([]byte, error) {
	contentType := p.codec.ContentType()
	start := time.Now()
	emitEncodeStart(ctx, contentType)

	var chunks int
	var retData []byte
	var retErr error
	defer func() {
		emitEncodeComplete(ctx, contentType, chunks, len(retData), time.Since(start), retErr)
	}()

	p.mu.RLock()
	defer p.mu.RUnlock()

	payload, err := p.pack(message)
	if err != nil {
		retErr = fmt.Errorf("encode: %w", err)
		return nil, retErr
	}
	chunks = len(payload.Floats)

	data, err := p.codec.Marshal(payload)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	if p.encryptor != nil {
		data, err = p.encryptor.Encrypt(data)
		if err != nil {
			retErr = newTransformError(ErrEncrypt, "encrypt", err)
			return nil, retErr
		}
	}

	retData = data
	return retData, nil
}

// Decode opens data when an encryptor is registered, unmarshals the
// payload, verifies its digest and decodes the message.
func (p *Processor) Decode(ctx context.Context, data []byte) (string, error) {
	contentType := p.codec.ContentType()
	start := time.Now()
	emitDecodeStart(ctx, contentType, len(data))

	var chunks int
	var retErr error
	defer func() {
		emitDecodeComplete(ctx, contentType, chunks, time.Since(start), retErr)
	}()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.encryptor != nil {
		plaintext, err := p.encryptor.Decrypt(data)
		if err != nil {
			retErr = newTransformError(ErrDecrypt, "decrypt", err)
			return "", retErr
		}
		data = plaintext
	}

	var payload Payload
	if err := p.codec.Unmarshal(data, &payload); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return "", retErr
	}
	chunks = len(payload.Floats)

	text, err := p.unpack(&payload)
	if err != nil {
		retErr = fmt.Errorf("decode: %w", err)
		return "", retErr
	}

	return text, nil
}

// pack requires p.mu held for reading.
func (p *Processor) pack(message string) (*Payload, error) {
	floats, err := EncodeString(message)
	if err != nil {
		return nil, err
	}

	payload := &Payload{Floats: floats}
	if p.digest == "" {
		return payload, nil
	}

	sum, err := p.sum(p.digest, floats)
	if err != nil {
		return nil, err
	}
	payload.Algorithm = string(p.digest)
	payload.Digest = sum
	return payload, nil
}

// unpack requires p.mu held for reading.
func (p *Processor) unpack(payload *Payload) (string, error) {
	if payload == nil {
		return "", ErrNilPayload
	}

	switch {
	case p.digest != "" && payload.Digest == "":
		return "", ErrMissingDigest
	case p.digest != "" && HashAlgo(payload.Algorithm) != p.digest:
		return "", newConfigError(ErrAlgorithmMismatch, payload.Algorithm)
	case payload.Digest != "":
		sum, err := p.sum(HashAlgo(payload.Algorithm), payload.Floats)
		if err != nil {
			return "", err
		}
		if sum != payload.Digest {
			return "", ErrDigestMismatch
		}
	}

	return DecodeFloats(payload.Floats)
}

// sum digests floats with the hasher registered for algo.
func (p *Processor) sum(algo HashAlgo, floats []float64) (string, error) {
	h, ok := p.hashers[algo]
	if !ok || h == nil {
		return "", newConfigError(ErrMissingHasher, string(algo))
	}

	sum, err := h.Hash(floatBytes(floats))
	if err != nil {
		return "", newTransformError(ErrHash, "hash", err)
	}
	return sum, nil
}
