package yaml

import (
	"testing"

	"github.com/zoobzio/codex"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	c := New()

	floats, err := codex.EncodeString("hello world, 42 times!")
	if err != nil {
		t.Fatalf("EncodeString() error: %v", err)
	}
	original := codex.Payload{Floats: floats, Algorithm: "sha256", Digest: "abc123"}

	data, err := c.Marshal(&original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored codex.Payload
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if len(restored.Floats) != len(original.Floats) {
		t.Fatalf("Floats length = %d, want %d", len(restored.Floats), len(original.Floats))
	}
	for i := range original.Floats {
		if restored.Floats[i] != original.Floats[i] {
			t.Errorf("Floats[%d] = %v, want %v", i, restored.Floats[i], original.Floats[i])
		}
	}
	if restored.Algorithm != original.Algorithm || restored.Digest != original.Digest {
		t.Errorf("digest fields = (%q, %q), want (%q, %q)",
			restored.Algorithm, restored.Digest, original.Algorithm, original.Digest)
	}

	text, err := codex.DecodeFloats(restored.Floats)
	if err != nil {
		t.Fatalf("DecodeFloats() error: %v", err)
	}
	if text != "hello world, 42 times!" {
		t.Errorf("decoded = %q, want %q", text, "hello world, 42 times!")
	}
}

func TestPayloadRoundTrip_Empty(t *testing.T) {
	c := New()

	data, err := c.Marshal(&codex.Payload{Floats: []float64{}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored codex.Payload
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(restored.Floats) != 0 {
		t.Errorf("Floats = %v, want empty", restored.Floats)
	}
	if restored.Digest != "" {
		t.Errorf("Digest = %q, want empty", restored.Digest)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v codex.Payload
	err := c.Unmarshal([]byte("floats: [invalid"), &v)
	if err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestUnmarshal_TypeMismatch(t *testing.T) {
	c := New()

	var v codex.Payload
	if err := c.Unmarshal([]byte("floats: not-a-list"), &v); err == nil {
		t.Error("Unmarshal(type mismatch) should return error")
	}
}
