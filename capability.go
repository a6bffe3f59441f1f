package codex

// HashAlgo represents a supported digest algorithm.
// Use these constants with WithDigest and in Payload.Algorithm.
type HashAlgo string

const (
	// HashSHA256 uses SHA-256.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512.
	HashSHA512 HashAlgo = "sha512"

	// HashBLAKE2b uses BLAKE2b-256.
	HashBLAKE2b HashAlgo = "blake2b"

	// HashSHA3 uses SHA3-256.
	HashSHA3 HashAlgo = "sha3"
)

// validHashAlgos contains all valid digest algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashSHA256:  true,
	HashSHA512:  true,
	HashBLAKE2b: true,
	HashSHA3:    true,
}

// IsValidHashAlgo returns true if the algorithm is a known digest algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}
