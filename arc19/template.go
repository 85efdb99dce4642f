package arc19

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const templateScheme = "template-ipfs://"

var (
	// ErrNotTemplateURL is returned when a URL does not use the
	// template-ipfs scheme.
	ErrNotTemplateURL = errors.New("URL does not use the template-ipfs scheme")

	// ErrMalformedTemplate is returned when the template token is missing or
	// garbled.
	ErrMalformedTemplate = errors.New("malformed ipfscid template")

	// ErrUnsupportedVersion is returned for CID versions other than 0 and 1.
	ErrUnsupportedVersion = errors.New("unsupported CID version")

	// ErrUnsupportedCodec is returned for codecs other than raw and dag-pb.
	ErrUnsupportedCodec = errors.New("unsupported CID codec")

	// ErrUnsupportedField is returned when the template resolves through
	// anything other than the reserve address.
	ErrUnsupportedField = errors.New("template field must be reserve")

	// ErrUnsupportedHashType is returned for hash functions other than sha2-256.
	ErrUnsupportedHashType = errors.New("template hash type must be sha2-256")
)

// TemplateURL is a parsed ARC-19 asset URL of the form
// template-ipfs://{ipfscid:<version>:<codec>:reserve:<hash type>}<path>.
type TemplateURL struct {
	Version  uint64 // CID version, 0 or 1
	Codec    string // "raw" or "dag-pb"
	Field    string // always "reserve"
	HashType string // always "sha2-256"
	Path     string // optional trailing path, may be empty
}

// ParseTemplateURL validates raw against the ARC-19 template grammar and
// returns its components. Any other scheme or a garbled token is an error.
func ParseTemplateURL(raw string) (*TemplateURL, error) {
	if !strings.HasPrefix(raw, templateScheme) {
		return nil, fmt.Errorf("%w: %q", ErrNotTemplateURL, raw)
	}
	rest := strings.TrimPrefix(raw, templateScheme)
	if !strings.HasPrefix(rest, "{") {
		return nil, fmt.Errorf("%w: %q", ErrMalformedTemplate, raw)
	}
	end := strings.Index(rest, "}")
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated token in %q", ErrMalformedTemplate, raw)
	}
	token, path := rest[1:end], rest[end+1:]

	parts := strings.Split(token, ":")
	if len(parts) != 5 || parts[0] != "ipfscid" {
		return nil, fmt.Errorf("%w: token %q", ErrMalformedTemplate, token)
	}
	version, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil || version > 1 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, parts[1])
	}
	codec := parts[2]
	if codec != "raw" && codec != "dag-pb" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCodec, codec)
	}
	if parts[3] != "reserve" {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedField, parts[3])
	}
	if parts[4] != "sha2-256" {
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedHashType, parts[4])
	}

	return &TemplateURL{
		Version:  version,
		Codec:    codec,
		Field:    parts[3],
		HashType: parts[4],
		Path:     path,
	}, nil
}

// String reassembles the template URL.
func (t *TemplateURL) String() string {
	return fmt.Sprintf("%s{ipfscid:%d:%s:%s:%s}%s",
		templateScheme, t.Version, t.Codec, t.Field, t.HashType, t.Path)
}
