// Package algorand implements the Algorand address checksum scheme and the
// ARC-19 conversion between IPFS content identifiers and addresses.
package algorand

import (
	"bytes"
	"encoding/base32"
	"errors"
	"fmt"

	"github.com/code-alexander/algobase/internal/hashutil"
)

const (
	// PublicKeyLen is the length in bytes of an Algorand public key.
	PublicKeyLen = 32

	// checksumLen is the length in bytes of the address checksum: the last
	// four bytes of the SHA-512/256 digest of the public key.
	checksumLen = 4

	// AddressLen is the length of a textual address: 36 bytes base32-encoded
	// without padding.
	AddressLen = 58
)

var (
	// ErrInvalidPublicKeyLength is returned when a public key is not exactly
	// 32 bytes.
	ErrInvalidPublicKeyLength = errors.New("public key must be exactly 32 bytes")

	// ErrInvalidAddress is returned when a textual address is malformed.
	ErrInvalidAddress = errors.New("invalid Algorand address")

	// ErrInvalidChecksum is returned when an address decodes but its
	// checksum does not match its public key.
	ErrInvalidChecksum = errors.New("invalid address checksum")
)

// Addresses use RFC 4648 base32 without padding.
var addressEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// EncodeAddress converts a 32-byte public key to its textual address:
// base32(publicKey || checksum) where the checksum is the last four bytes of
// SHA-512/256(publicKey).
func EncodeAddress(publicKey []byte) (string, error) {
	if len(publicKey) != PublicKeyLen {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidPublicKeyLength, len(publicKey))
	}
	digest := hashutil.SHA512_256(publicKey)
	raw := make([]byte, 0, PublicKeyLen+checksumLen)
	raw = append(raw, publicKey...)
	raw = append(raw, digest[len(digest)-checksumLen:]...)
	return addressEncoding.EncodeToString(raw), nil
}

// DecodeAddress converts a textual address back to its 32-byte public key,
// verifying length and checksum.
func DecodeAddress(address string) ([]byte, error) {
	if len(address) != AddressLen {
		return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidAddress, address, len(address), AddressLen)
	}
	raw, err := addressEncoding.DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not valid base32", ErrInvalidAddress, address)
	}
	if len(raw) != PublicKeyLen+checksumLen {
		return nil, fmt.Errorf("%w: %q decodes to %d bytes", ErrInvalidAddress, address, len(raw))
	}
	publicKey, checksum := raw[:PublicKeyLen], raw[PublicKeyLen:]
	digest := hashutil.SHA512_256(publicKey)
	if !bytes.Equal(checksum, digest[len(digest)-checksumLen:]) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChecksum, address)
	}
	return publicKey, nil
}

// IsValidAddress reports whether address is a well-formed Algorand address
// with a correct checksum.
func IsValidAddress(address string) bool {
	_, err := DecodeAddress(address)
	return err == nil
}
