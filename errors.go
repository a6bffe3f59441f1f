package codex

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidCharacter indicates input text contains a symbol outside the alphabet.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidWidth indicates a chunk width outside 1..MaxCharsPerFloat.
	ErrInvalidWidth = errors.New("invalid chunk width")

	// ErrValueOutOfRange indicates a float that no chunk could have produced.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrInvalidAlgorithm indicates an unknown digest algorithm.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrMissingHasher indicates no hasher is registered for a digest algorithm.
	ErrMissingHasher = errors.New("missing hasher")

	// ErrMissingDigest indicates a digest was required but the payload carried none.
	ErrMissingDigest = errors.New("missing digest")

	// ErrAlgorithmMismatch indicates a payload was digested with an algorithm
	// other than the one the processor requires.
	ErrAlgorithmMismatch = errors.New("algorithm mismatch")

	// ErrNilPayload indicates a nil payload was passed for decoding.
	ErrNilPayload = errors.New("nil payload")

	// ErrDigestMismatch indicates the payload digest does not match its floats.
	ErrDigestMismatch = errors.New("digest mismatch")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrEncrypt indicates sealing a marshaled payload failed.
	ErrEncrypt = errors.New("encrypt failed")

	// ErrDecrypt indicates opening a sealed payload failed.
	ErrDecrypt = errors.New("decrypt failed")

	// ErrHash indicates computing a digest failed.
	ErrHash = errors.New("hash failed")
)

// CharacterError reports a symbol outside the alphabet.
type CharacterError struct {
	Err    error  // Underlying sentinel error (ErrInvalidCharacter)
	Text   string // Text that was being encoded
	Char   rune   // Offending rune
	Offset int    // Rune offset of Char within Text
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at offset %d in %q", e.Err.Error(), e.Char, e.Offset, e.Text)
}

func (e *CharacterError) Unwrap() error {
	return e.Err
}

// ValueError reports a float that cannot be decoded.
type ValueError struct {
	Err   error   // Underlying sentinel error (ErrValueOutOfRange)
	Value float64 // Offending value
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %v", e.Err.Error(), e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrInvalidAlgorithm, ErrMissingHasher, ErrAlgorithmMismatch)
	Algorithm string // Algorithm that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Algorithm != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.Algorithm)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents a failure while sealing, opening or hashing a payload.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncrypt, ErrDecrypt, ErrHash)
	Operation string // Operation that failed (encrypt, decrypt, hash)
	Cause     error  // Original error from the underlying operation
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s payload: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s payload", e.Operation)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newCharacterError creates a CharacterError for a rejected rune.
func newCharacterError(text string, char rune, offset int) error {
	return &CharacterError{
		Err:    ErrInvalidCharacter,
		Text:   text,
		Char:   char,
		Offset: offset,
	}
}

// newValueError creates a ValueError for an undecodable float.
func newValueError(value float64) error {
	return &ValueError{
		Err:   ErrValueOutOfRange,
		Value: value,
	}
}

// newConfigError creates a ConfigError for bad or missing algorithms.
func newConfigError(sentinel error, algorithm string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
	}
}

// newTransformError creates a TransformError for payload transformation failures.
func newTransformError(sentinel error, operation string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
