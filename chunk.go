package codex

import "math"

// EncodeChunk encodes up to MaxCharsPerFloat symbols of text into a float in [0, 1).
func EncodeChunk(text string) (float64, error) {
	return EncodeChunkN(text, MaxCharsPerFloat)
}

// EncodeChunkN encodes text at the given width.
//
// Every rune of text must be in the alphabet, including runes past maxChars.
// Text longer than maxChars is truncated; shorter text is right-padded with Pad.
// The padded symbols are read as a base-Base integer, most significant first,
// and divided by 2^Exponent.
func EncodeChunkN(text string, maxChars int) (float64, error) {
	if maxChars < 1 || maxChars > MaxCharsPerFloat {
		return 0, ErrInvalidWidth
	}

	var n uint64
	count := 0
	offset := 0
	for _, r := range text {
		idx := IndexOf(r)
		if idx < 0 {
			return 0, newCharacterError(text, r, offset)
		}
		offset++
		if count < maxChars {
			n = n*uint64(Base) + uint64(idx)
			count++
		}
	}

	// Pad has digit value 0
	for ; count < maxChars; count++ {
		n *= uint64(Base)
	}

	return float64(n) / scale, nil
}

// DecodeChunk decodes a float produced by EncodeChunk into MaxCharsPerFloat symbols.
// The result keeps its padding.
func DecodeChunk(value float64) (string, error) {
	return DecodeChunkN(value, MaxCharsPerFloat)
}

// DecodeChunkN decodes value into exactly maxChars symbols.
//
// Values that are NaN, outside [0, 1), or whose integer does not fit in
// maxChars digits are rejected with ErrValueOutOfRange.
func DecodeChunkN(value float64, maxChars int) (string, error) {
	if maxChars < 1 || maxChars > MaxCharsPerFloat {
		return "", ErrInvalidWidth
	}
	if math.IsNaN(value) || value < 0 || value >= 1 {
		return "", newValueError(value)
	}

	n := uint64(value * scale)
	if n >= capacity(maxChars) {
		return "", newValueError(value)
	}

	out := make([]byte, maxChars)
	for i := maxChars - 1; i >= 0; i-- {
		out[i] = Alphabet[n%uint64(Base)]
		n /= uint64(Base)
	}
	return string(out), nil
}
