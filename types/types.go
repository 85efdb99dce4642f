// Package types implements the constrained primitives shared by asset
// parameters and metadata documents: bounded integers, byte-length-bounded
// strings, digest and encoding shapes, locales, MIME types, and
// scheme-restricted URLs. Each check either accepts the value or fails with
// a distinguishable error kind; nothing is coerced silently.
package types

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/code-alexander/algobase/refdata"
)

const (
	// HashLen is the length in bytes of an Algorand hash field.
	HashLen = 32

	// MaxAssetDecimals is the largest allowed value of an ASA decimals field.
	MaxAssetDecimals = 19

	// MaxUnitNameBytes bounds an ASA unit name, measured in UTF-8 bytes.
	MaxUnitNameBytes = 8

	// MaxAssetNameBytes bounds an ASA asset name, measured in UTF-8 bytes.
	MaxAssetNameBytes = 32

	// MaxURLBytes bounds an ASA URL, measured in UTF-8 bytes.
	MaxURLBytes = 96
)

// CheckUint32 checks that v fits in the unsigned 32-bit range.
func CheckUint32(v uint64) error {
	if v > math.MaxUint32 {
		return fmt.Errorf("%w: %d exceeds 2^32-1", ErrOutOfRange, v)
	}
	return nil
}

// CheckDecimals checks that v is a valid ASA decimals value (0 to 19).
func CheckDecimals(v uint32) error {
	if v > MaxAssetDecimals {
		return fmt.Errorf("%w: decimals %d exceeds %d", ErrOutOfRange, v, MaxAssetDecimals)
	}
	return nil
}

// CheckHash32 checks that b is exactly 32 bytes.
func CheckHash32(b []byte) error {
	if len(b) != HashLen {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidHashLength, len(b))
	}
	return nil
}

// CheckEncodedLength checks that s is at most max bytes when encoded in
// UTF-8. Bounds are byte bounds, not character counts.
func CheckEncodedLength(s string, max int) error {
	if len(s) > max {
		return fmt.Errorf("%w: %q is %d bytes, max %d", ErrEncodedTooLong, s, len(s), max)
	}
	return nil
}

// CheckBase64 checks that s is valid standard (padded) base64.
func CheckBase64(s string) error {
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBase64, s)
	}
	return nil
}

// CheckHex checks that every character of s is a hexadecimal digit.
func CheckHex(s string) error {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	return nil
}

// CheckColor checks that s is a six-character hexadecimal color without a
// leading '#'.
func CheckColor(s string) error {
	if len(s) != 6 {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if err := CheckHex(s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return nil
}

// sriDigestLen maps supported SRI hash algorithms to their digest size.
var sriDigestLen = map[string]int{
	"sha256": 32,
	"sha384": 48,
	"sha512": 64,
}

// CheckSRI checks that s is a valid W3C subresource integrity string:
// a supported algorithm prefix followed by a base64 digest of the
// algorithm's size.
func CheckSRI(s string) error {
	algo, digest, found := strings.Cut(s, "-")
	want, supported := sriDigestLen[algo]
	if !found || !supported {
		return fmt.Errorf("%w: %q must start with 'sha256-', 'sha384-' or 'sha512-'", ErrInvalidSRI, s)
	}
	raw, err := base64.StdEncoding.DecodeString(digest)
	if err != nil {
		return fmt.Errorf("%w: %q has a non-base64 digest", ErrInvalidSRI, s)
	}
	if len(raw) != want {
		return fmt.Errorf("%w: %q expected %d byte digest, got %d", ErrInvalidSRI, s, want, len(raw))
	}
	return nil
}

// CheckARC3SRI checks that s is a SHA-256 subresource integrity string, the
// only digest algorithm ARC-3 integrity fields allow.
func CheckARC3SRI(s string) error {
	if !strings.HasPrefix(s, "sha256-") {
		return fmt.Errorf("%w: %q must start with 'sha256-'", ErrInvalidSRI, s)
	}
	return CheckSRI(s)
}

// CheckLocale checks that s names a known Unicode CLDR locale.
func CheckLocale(s string) error {
	tag, err := language.Parse(s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLocale, s)
	}
	if _, conf := tag.Base(); conf == language.No {
		return fmt.Errorf("%w: %q is not a known CLDR locale", ErrInvalidLocale, s)
	}
	return nil
}

// CheckMIMEType checks that value is a registered MIME type. When
// primaryType is non-empty the registered type must additionally carry that
// primary type (e.g. "image" requires an "image/*" value).
func CheckMIMEType(p refdata.Provider, value, primaryType string) error {
	if !p.IsRegisteredMIME(value) {
		return fmt.Errorf("%w: %q", ErrUnknownMIMEType, value)
	}
	if primaryType != "" && !strings.HasPrefix(value, primaryType+"/") {
		return fmt.Errorf("%w: %q is not a %s type", ErrWrongMIMEPrimaryType, value, primaryType)
	}
	return nil
}

// DecodeURLBraces replaces percent-encoded curly braces in a URL with their
// literal form. Some standards embed `{param}` placeholders (e.g. `{id}`,
// `{locale}`) that clients substitute before fetching.
func DecodeURLBraces(u string) string {
	u = strings.ReplaceAll(u, "%7B", "{")
	u = strings.ReplaceAll(u, "%7D", "}")
	return u
}

// CheckURL checks that s is at most MaxURLBytes when UTF-8 encoded and, once
// placeholder braces are decoded, parses as an absolute URL. It returns the
// brace-decoded form.
func CheckURL(s string) (string, error) {
	decoded := DecodeURLBraces(s)
	if err := CheckEncodedLength(decoded, MaxURLBytes); err != nil {
		return "", err
	}
	u, err := url.Parse(decoded)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	return decoded, nil
}

// CheckARC3URL checks an ARC-3 resource URL: at most MaxURLBytes, scheme
// restricted to https or ipfs, and not hosted on a known public IPFS
// gateway. It returns the brace-decoded form.
func CheckARC3URL(p refdata.Provider, s string) (string, error) {
	decoded := DecodeURLBraces(s)
	if err := CheckEncodedLength(decoded, MaxURLBytes); err != nil {
		return "", err
	}
	u, err := url.Parse(decoded)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidURL, s)
	}
	if u.Scheme != "https" && u.Scheme != "ipfs" {
		return "", fmt.Errorf("%w: %q must use https or ipfs", ErrDisallowedURLScheme, s)
	}
	if u.Host != "" && p.IsIPFSGateway(u.Host) {
		return "", fmt.Errorf("%w: %q", ErrIPFSGatewayHost, u.Host)
	}
	return decoded, nil
}

// CheckLocalizedURL checks an ARC-3 localization URI: the same constraints
// as CheckARC3URL plus the literal `{locale}` placeholder.
func CheckLocalizedURL(p refdata.Provider, s string) (string, error) {
	if !strings.Contains(s, "{locale}") && !strings.Contains(DecodeURLBraces(s), "{locale}") {
		return "", fmt.Errorf("%w: %q must contain '{locale}'", ErrMissingSubstring, s)
	}
	return CheckARC3URL(p, s)
}

// ParseUint64 converts a decimal string to uint64. It is the lenient
// counterpart of taking a uint64 directly and exists for callers that accept
// loosely typed input; strict callers should not reach for it.
func ParseUint64(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
	}
	return v, nil
}
