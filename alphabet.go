package codex

import "fmt"

// Alphabet is the ordered symbol table. A symbol's digit value is its index.
const Alphabet = "abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" .?!#$\n,"

const (
	// Base is the radix of the positional number system.
	Base = len(Alphabet)

	// Exponent sets the normalization space: chunk integers are divided by 2^Exponent.
	Exponent = 42

	// MaxCharsPerFloat is the number of symbols packed into one float.
	// Base^MaxCharsPerFloat stays below 2^Exponent.
	MaxCharsPerFloat = 7

	// Pad fills short chunks. It is the symbol at index 0.
	Pad = 'a'
)

// scale is 2^Exponent as a float64. Exact.
const scale = float64(uint64(1) << Exponent)

// symbolIndex maps an ASCII byte to its digit value, -1 when absent.
var symbolIndex [128]int

func init() {
	for i := range symbolIndex {
		symbolIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		if symbolIndex[c] != -1 {
			panic(fmt.Sprintf("codex: duplicate symbol %q in alphabet", c))
		}
		symbolIndex[c] = i
	}
}

// IndexOf returns the digit value of r, or -1 if r is not in the alphabet.
func IndexOf(r rune) int {
	if r < 0 || int(r) >= len(symbolIndex) {
		return -1
	}
	return symbolIndex[r]
}

// IsValid reports whether every rune of s is in the alphabet.
func IsValid(s string) bool {
	for _, r := range s {
		if IndexOf(r) < 0 {
			return false
		}
	}
	return true
}

// capacity returns Base^width.
func capacity(width int) uint64 {
	n := uint64(1)
	for i := 0; i < width; i++ {
		n *= uint64(Base)
	}
	return n
}
