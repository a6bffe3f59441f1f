package codex

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestAlphabet_Constants(t *testing.T) {
	if Base != len(Alphabet) {
		t.Errorf("Base = %d, want %d", Base, len(Alphabet))
	}
	if Alphabet[0] != Pad {
		t.Errorf("Alphabet[0] = %q, want Pad %q", Alphabet[0], Pad)
	}
	if capacity(MaxCharsPerFloat) >= uint64(1)<<Exponent {
		t.Errorf("Base^%d = %d does not fit below 2^%d", MaxCharsPerFloat, capacity(MaxCharsPerFloat), Exponent)
	}
}

func TestAlphabet_Bijection(t *testing.T) {
	for i, r := range Alphabet {
		if got := IndexOf(r); got != i {
			t.Errorf("IndexOf(%q) = %d, want %d", r, got, i)
		}
	}

	for _, r := range []rune{'A', 'Z', '@', '%', '\t', 'é', -1, 0} {
		if got := IndexOf(r); got != -1 {
			t.Errorf("IndexOf(%q) = %d, want -1", r, got)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("hello, world!\n") {
		t.Error("IsValid should accept alphabet text")
	}
	if IsValid("Hello") {
		t.Error("IsValid should reject upper case")
	}
	if !IsValid("") {
		t.Error("IsValid should accept empty text")
	}
}

func TestEncodeChunk_PadOnly(t *testing.T) {
	got, err := EncodeChunk("a")
	if err != nil {
		t.Fatalf("EncodeChunk error: %v", err)
	}
	if got != 0.0 {
		t.Errorf("EncodeChunk(%q) = %v, want 0", "a", got)
	}
}

func TestDecodeChunk_Zero(t *testing.T) {
	got, err := DecodeChunk(0.0)
	if err != nil {
		t.Fatalf("DecodeChunk error: %v", err)
	}
	if got != "aaaaaaa" {
		t.Errorf("DecodeChunk(0) = %q, want %q", got, "aaaaaaa")
	}
}

func TestEncodeChunk_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		text string
		want uint64
	}{
		{"last digit", "aaaaaab", 1},
		{"second digit", "aaaaaba", uint64(Base)},
		{"short pads right", "b", capacity(6)},
		{"all max", ",,,,,,,", capacity(7) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeChunk(tt.text)
			if err != nil {
				t.Fatalf("EncodeChunk error: %v", err)
			}
			want := float64(tt.want) / scale
			if got != want {
				t.Errorf("EncodeChunk(%q) = %v, want %v", tt.text, got, want)
			}
		})
	}
}

func TestEncodeChunk_Truncates(t *testing.T) {
	long, err := EncodeChunk("abcdefghij")
	if err != nil {
		t.Fatalf("EncodeChunk error: %v", err)
	}
	short, err := EncodeChunk("abcdefg")
	if err != nil {
		t.Fatalf("EncodeChunk error: %v", err)
	}
	if long != short {
		t.Errorf("truncated encode = %v, want %v", long, short)
	}
}

func TestEncodeChunk_InvalidCharacter(t *testing.T) {
	_, err := EncodeChunk("az9!@")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("EncodeChunk error = %v, want ErrInvalidCharacter", err)
	}

	var ce *CharacterError
	if !errors.As(err, &ce) {
		t.Fatalf("error should be *CharacterError, got %T", err)
	}
	if ce.Char != '@' || ce.Offset != 4 || ce.Text != "az9!@" {
		t.Errorf("CharacterError = %+v", ce)
	}
}

func TestEncodeChunk_InvalidPastWidth(t *testing.T) {
	// Runes beyond the truncation point are still validated.
	_, err := EncodeChunk("abcdefgH")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("EncodeChunk error = %v, want ErrInvalidCharacter", err)
	}
}

func TestEncodeChunk_UpperCaseRejected(t *testing.T) {
	if _, err := EncodeChunk("Abc"); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("EncodeChunk error = %v, want ErrInvalidCharacter", err)
	}
}

func TestChunkN_InvalidWidth(t *testing.T) {
	for _, w := range []int{-1, 0, MaxCharsPerFloat + 1} {
		if _, err := EncodeChunkN("abc", w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("EncodeChunkN width %d error = %v, want ErrInvalidWidth", w, err)
		}
		if _, err := DecodeChunkN(0, w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("DecodeChunkN width %d error = %v, want ErrInvalidWidth", w, err)
		}
	}
}

func TestChunk_RoundTrip(t *testing.T) {
	inputs := []string{
		"b", "z", "hello", "hello w", "orld", "0123456", "?!#$.,\n", " ", "zzzzzzz", ",,,,,,,",
	}
	// Every symbol in every position.
	for i, r := range Alphabet {
		pos := i % MaxCharsPerFloat
		inputs = append(inputs, strings.Repeat("q", pos)+string(r))
	}

	for _, in := range inputs {
		f, err := EncodeChunk(in)
		if err != nil {
			t.Fatalf("EncodeChunk(%q) error: %v", in, err)
		}
		got, err := DecodeChunk(f)
		if err != nil {
			t.Fatalf("DecodeChunk(%v) error: %v", f, err)
		}
		want := in + strings.Repeat(string(Pad), MaxCharsPerFloat-len(in))
		if got != want {
			t.Errorf("round trip %q = %q, want %q", in, got, want)
		}
	}
}

func TestChunkN_RoundTrip(t *testing.T) {
	for w := 1; w <= MaxCharsPerFloat; w++ {
		in := "x9?"
		if len(in) > w {
			in = in[:w]
		}
		f, err := EncodeChunkN(in, w)
		if err != nil {
			t.Fatalf("EncodeChunkN(%q, %d) error: %v", in, w, err)
		}
		got, err := DecodeChunkN(f, w)
		if err != nil {
			t.Fatalf("DecodeChunkN(%v, %d) error: %v", f, w, err)
		}
		want := in + strings.Repeat(string(Pad), w-len(in))
		if got != want {
			t.Errorf("width %d round trip = %q, want %q", w, got, want)
		}
	}
}

func TestEncodeChunk_RangeAndInjective(t *testing.T) {
	seen := make(map[float64]string)
	// Two varying positions over the full alphabet.
	for _, hi := range Alphabet {
		for _, lo := range Alphabet {
			in := string(hi) + "mm" + string(lo)
			f, err := EncodeChunk(in)
			if err != nil {
				t.Fatalf("EncodeChunk(%q) error: %v", in, err)
			}
			if f < 0 || f >= 1 {
				t.Fatalf("EncodeChunk(%q) = %v, outside [0, 1)", in, f)
			}
			if prev, ok := seen[f]; ok {
				t.Fatalf("EncodeChunk(%q) collides with %q at %v", in, prev, f)
			}
			seen[f] = in
		}
	}
}

func TestDecodeChunk_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"negative", -0.1},
		{"one", 1},
		{"above one", 3.5},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"beyond code space", float64(capacity(MaxCharsPerFloat)) / scale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeChunk(tt.value)
			if !errors.Is(err, ErrValueOutOfRange) {
				t.Fatalf("DecodeChunk(%v) error = %v, want ErrValueOutOfRange", tt.value, err)
			}
			var ve *ValueError
			if !errors.As(err, &ve) {
				t.Fatalf("error should be *ValueError, got %T", err)
			}
		})
	}
}

func TestDecodeChunkN_NarrowWidthRejectsWideValue(t *testing.T) {
	f, err := EncodeChunk("zzzzzzz")
	if err != nil {
		t.Fatalf("EncodeChunk error: %v", err)
	}
	if _, err := DecodeChunkN(f, 3); !errors.Is(err, ErrValueOutOfRange) {
		t.Errorf("DecodeChunkN error = %v, want ErrValueOutOfRange", err)
	}
}
