package algorand

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

var (
	// ErrInvalidCID is returned when a string does not parse as a CID.
	ErrInvalidCID = errors.New("invalid CID")

	// ErrUnsupportedCIDCodec is returned for CID codecs other than raw and
	// dag-pb.
	ErrUnsupportedCIDCodec = errors.New("unsupported CID codec")

	// ErrUnsupportedHashFunction is returned for multihash functions other
	// than sha2-256.
	ErrUnsupportedHashFunction = errors.New("unsupported multihash function")

	// ErrInvalidCIDDigestLength is returned when the multihash digest is not
	// the length of an Algorand public key.
	ErrInvalidCIDDigestLength = errors.New("CID digest must be exactly 32 bytes")
)

// CIDToAddress converts a CID to an Algorand address by extracting the raw
// 32-byte multihash digest and encoding it under the address checksum
// scheme. The result is placed in the reserve field of an ARC-19 asset.
// Pure and total for any syntactically valid CID; no network access.
func CIDToAddress(v string) (string, error) {
	c, err := cid.Decode(v)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidCID, v, err)
	}
	prefix := c.Prefix()
	if prefix.Codec != cid.Raw && prefix.Codec != cid.DagProtobuf {
		return "", fmt.Errorf("%w: codec 0x%x", ErrUnsupportedCIDCodec, prefix.Codec)
	}
	if prefix.MhType != mh.SHA2_256 {
		return "", fmt.Errorf("%w: code 0x%x", ErrUnsupportedHashFunction, prefix.MhType)
	}
	decoded, err := mh.Decode(c.Hash())
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidCID, v, err)
	}
	if len(decoded.Digest) != PublicKeyLen {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidCIDDigestLength, len(decoded.Digest))
	}
	return EncodeAddress(decoded.Digest)
}

// AddressToCID reverses CIDToAddress: it wraps the address's public key in a
// sha2-256 multihash and encodes it as a CID of the given version and codec.
// Version 0 CIDs only support the dag-pb codec.
func AddressToCID(address string, version uint64, codec uint64) (cid.Cid, error) {
	if codec != cid.Raw && codec != cid.DagProtobuf {
		return cid.Undef, fmt.Errorf("%w: codec 0x%x", ErrUnsupportedCIDCodec, codec)
	}
	digest, err := DecodeAddress(address)
	if err != nil {
		return cid.Undef, err
	}
	hash, err := mh.Encode(digest, mh.SHA2_256)
	if err != nil {
		return cid.Undef, fmt.Errorf("encode multihash: %w", err)
	}
	switch version {
	case 0:
		if codec != cid.DagProtobuf {
			return cid.Undef, fmt.Errorf("%w: CIDv0 requires dag-pb", ErrUnsupportedCIDCodec)
		}
		return cid.NewCidV0(hash), nil
	case 1:
		return cid.NewCidV1(codec, hash), nil
	default:
		return cid.Undef, fmt.Errorf("%w: unsupported CID version %d", ErrInvalidCID, version)
	}
}
