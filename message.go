package codex

import (
	"fmt"
	"strings"
)

// EncodeString lower-cases message and encodes it as one float per
// MaxCharsPerFloat-symbol chunk, in text order.
//
// Case is not preserved. An empty message yields an empty slice.
func EncodeString(message string) ([]float64, error) {
	runes := []rune(strings.ToLower(message))
	floats := make([]float64, 0, (len(runes)+MaxCharsPerFloat-1)/MaxCharsPerFloat)

	for i := 0; i < len(runes); i += MaxCharsPerFloat {
		end := min(i+MaxCharsPerFloat, len(runes))
		f, err := EncodeChunk(string(runes[i:end]))
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i/MaxCharsPerFloat, err)
		}
		floats = append(floats, f)
	}

	return floats, nil
}

// DecodeFloats decodes each value into a padded chunk, joins them in order
// and strips trailing Pad symbols.
//
// Only the end of the text is stripped, so a message that itself ends in Pad
// does not survive a round trip.
func DecodeFloats(values []float64) (string, error) {
	var b strings.Builder
	b.Grow(len(values) * MaxCharsPerFloat)

	for i, v := range values {
		chunk, err := DecodeChunk(v)
		if err != nil {
			return "", fmt.Errorf("value %d: %w", i, err)
		}
		b.WriteString(chunk)
	}

	return strings.TrimRight(b.String(), string(Pad)), nil
}
