package types

import "errors"

var (
	// ErrOutOfRange is returned when a numeric value violates its bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrEncodedTooLong is returned when a string exceeds its byte bound
	// once encoded in UTF-8.
	ErrEncodedTooLong = errors.New("value too long when encoded in UTF-8")

	// ErrInvalidHashLength is returned when a hash field is not exactly 32 bytes.
	ErrInvalidHashLength = errors.New("hash must be exactly 32 bytes")

	// ErrInvalidBase64 is returned when a value is not valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrInvalidHex is returned when a value is not a valid hex string.
	ErrInvalidHex = errors.New("invalid hex string")

	// ErrInvalidColor is returned when a color is not six hex characters.
	ErrInvalidColor = errors.New("color must be six hexadecimal characters")

	// ErrInvalidSRI is returned when a value is not a valid subresource
	// integrity string.
	ErrInvalidSRI = errors.New("invalid subresource integrity string")

	// ErrInvalidLocale is returned when a value is not a known Unicode CLDR locale.
	ErrInvalidLocale = errors.New("invalid locale")

	// ErrUnknownMIMEType is returned when a value is not a registered MIME type.
	ErrUnknownMIMEType = errors.New("unknown MIME type")

	// ErrWrongMIMEPrimaryType is returned when a MIME type is registered but
	// carries the wrong primary type.
	ErrWrongMIMEPrimaryType = errors.New("wrong MIME primary type")

	// ErrInvalidURL is returned when a value does not parse as a URL after
	// decoding placeholder braces.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrDisallowedURLScheme is returned when a URL scheme is outside the
	// allowed set.
	ErrDisallowedURLScheme = errors.New("disallowed URL scheme")

	// ErrIPFSGatewayHost is returned when a URL resolves to a known public
	// IPFS gateway host.
	ErrIPFSGatewayHost = errors.New("URL host is a public IPFS gateway")

	// ErrMissingSubstring is returned when a value lacks a required substring.
	ErrMissingSubstring = errors.New("required substring missing")

	// ErrNotNumeric is returned by lenient parsing when a string cannot be
	// interpreted as an integer.
	ErrNotNumeric = errors.New("value is not numeric")
)
