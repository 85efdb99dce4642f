// Package hashutil provides the fixed-length digests used by the ARC-3
// metadata hash algorithm and the Algorand address checksum.
package hashutil

import (
	"crypto/sha256"
	"crypto/sha512"
)

// SHA256 returns the 32-byte SHA-256 digest of data.
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA512_256 returns the 32-byte SHA-512/256 digest of data.
func SHA512_256(data []byte) []byte {
	sum := sha512.Sum512_256(data)
	return sum[:]
}
