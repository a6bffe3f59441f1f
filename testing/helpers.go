// Package testing provides test utilities for codex.
package testing

import (
	"context"
	"strings"
	"testing"

	"github.com/zoobzio/codex"
)

// TestKey returns a valid 32-byte AES key for testing.
func TestKey(tb testing.TB) []byte {
	tb.Helper()
	return []byte("32-byte-key-for-aes-256-encrypt!")
}

// TestEncryptor returns an AES encryptor configured for testing.
func TestEncryptor(tb testing.TB) codex.Encryptor {
	tb.Helper()
	enc, err := codex.AES(TestKey(tb))
	if err != nil {
		tb.Fatalf("AES() error: %v", err)
	}
	return enc
}

// Messages returns sample messages that survive a round trip: every rune is
// in the alphabet after lower-casing and none ends in codex.Pad.
func Messages() []string {
	return []string{
		"hello world",
		"The quick brown fox jumps over the lazy dog.",
		"meet me at 10.30 by the old mill!",
		"is it #1? $5 says yes",
		"line one\nline two\nline three",
		"commas, commas, everywhere,",
		"x",
		"1234567",
		"a man a plan a canal panama!",
		strings.Repeat("0123456789", 20),
	}
}

// Expected returns what decoding message yields.
func Expected(message string) string {
	return strings.TrimRight(strings.ToLower(message), string(codex.Pad))
}

// AssertRoundTrip encodes message with proc, decodes the result and fails
// tb when the text differs from Expected(message).
func AssertRoundTrip(tb testing.TB, proc *codex.Processor, message string) {
	tb.Helper()

	data, err := proc.Encode(context.Background(), message)
	if err != nil {
		tb.Fatalf("Encode(%q) error: %v", message, err)
	}

	got, err := proc.Decode(context.Background(), data)
	if err != nil {
		tb.Fatalf("Decode(%q) error: %v", message, err)
	}

	if want := Expected(message); got != want {
		tb.Errorf("round trip = %q, want %q", got, want)
	}
}
